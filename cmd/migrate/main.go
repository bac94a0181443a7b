package main

import (
	"log"
	"os"

	"trade-compliance-be/internal/model"
	"trade-compliance-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	log.Println("Step 1: Setting up Extensions...")
	if err := database.EnsureExtensions(db); err != nil {
		log.Fatalf("Error: Failed to set up extensions: %v", err)
	}

	log.Println("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.GoodsNomenclature{},
		&model.NomenclatureChunk{},
		&model.ImportMeasure{},
		&model.ExportMeasure{},
		&model.MeasureCondition{},
		&model.VatRate{},
		&model.ExchangeRate{},
		&model.ReachMap{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 3. Post-migration: the ANN index AutoMigrate cannot express.
	log.Println("Step 3: Creating vector index...")
	indexSQL := `CREATE INDEX IF NOT EXISTS idx_nomenclature_chunks_embedding
		ON nomenclature_chunks USING hnsw (embedding vector_cosine_ops)`
	if err := db.Exec(indexSQL).Error; err != nil {
		log.Printf("Warn: Failed to create vector index: %v. Continuing...", err)
	}

	log.Println("Migration completed successfully")
}
