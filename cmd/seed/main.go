package main

import (
	"context"
	"log"
	"time"

	"trade-compliance-be/internal/config"
	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/unitofwork"
	"trade-compliance-be/pkg/database"
	"trade-compliance-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

func ptr[T any](v T) *T {
	return &v
}

// Seeds the knitted-apparel fixture: heading 6110 with the cotton /
// man-made fibre subdivisions, measures for PK -> DE, VAT, exchange
// rates, a certificate condition and a REACH entry. The chunk index for
// each leaf is embedded on the spot.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(ctx)

	embedder := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)

	validFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	// 1. Nomenclature hierarchy
	nomenclature := []*entity.GoodsNomenclature{
		{GoodsCode: "6110", DescriptionEn: "Jerseys, pullovers, cardigans, waistcoats and similar articles, knitted or crocheted", Level: 4, ValidFrom: validFrom},
		{GoodsCode: "611020", DescriptionEn: "Of cotton", Level: 6, ValidFrom: validFrom},
		{GoodsCode: "611030", DescriptionEn: "Of man-made fibres", Level: 6, ValidFrom: validFrom},
		{GoodsCode: "61102000", DescriptionEn: "Jerseys, pullovers, cardigans, waistcoats and similar articles, of cotton, knitted or crocheted", Level: 8, IsLeaf: true, ValidFrom: validFrom},
		{GoodsCode: "61103000", DescriptionEn: "Jerseys, pullovers, cardigans, waistcoats and similar articles, of man-made fibres, knitted or crocheted", Level: 8, IsLeaf: true, ValidFrom: validFrom},
	}
	for _, n := range nomenclature {
		if err := uow.GoodsNomenclatureRepository().Upsert(ctx, n); err != nil {
			log.Fatalf("Failed to seed nomenclature %s: %v", n.GoodsCode, err)
		}
		log.Printf("%s nomenclature %s", green("Seeded"), cyan(n.GoodsCode))
	}

	// 2. Import measures: ERGA OMNES third-country duty plus the GSP
	// preferential rate for Pakistan.
	importMeasures := []*entity.ImportMeasure{
		{
			GoodsCode:   "61102000",
			OriginGroup: "ERGA OMNES",
			MeasureType: "Third country duty",
			DutyComponents: []entity.DutyComponent{
				{Type: "ad_valorem", Value: 12.0, Unit: ptr("percent")},
			},
			LegalBaseId:    "R2658/87",
			LegalBaseTitle: "Council Regulation (EEC) No 2658/87",
			ValidFrom:      validFrom,
		},
		{
			GoodsCode:   "61102000",
			OriginGroup: "PK",
			MeasureType: "Tariff preference",
			DutyComponents: []entity.DutyComponent{
				{Type: "ad_valorem", Value: 9.6, Unit: ptr("percent")},
			},
			LegalBaseId:    "R978/2012",
			LegalBaseTitle: "Regulation (EU) No 978/2012 (GSP)",
			CondCertCode:   ptr("N954"),
			ValidFrom:      validFrom,
		},
	}
	if err := uow.ImportMeasureRepository().CreateBulk(ctx, importMeasures); err != nil {
		log.Fatalf("Failed to seed import measures: %v", err)
	}
	log.Printf("%s %d import measures", green("Seeded"), len(importMeasures))

	// 3. Export side
	exportMeasures := []*entity.ExportMeasure{
		{
			GoodsCode:        "61102000",
			DestinationGroup: "ERGA OMNES",
			MeasureType:      "Export authorization (none required)",
			LegalBaseId:      "R2015/479",
			LegalBaseTitle:   "Regulation (EU) 2015/479",
			ValidFrom:        validFrom,
		},
	}
	if err := uow.ExportMeasureRepository().CreateBulk(ctx, exportMeasures); err != nil {
		log.Fatalf("Failed to seed export measures: %v", err)
	}

	// 4. VAT + exchange rates
	if err := uow.VatRateRepository().Upsert(ctx, &entity.VatRate{
		CountryCode:  "DE",
		StandardRate: 19.0,
		ReducedRate1: ptr(7.0),
		ValidFrom:    validFrom,
	}); err != nil {
		log.Fatalf("Failed to seed VAT rate: %v", err)
	}

	rateDate := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rates := []*entity.ExchangeRate{
		{Iso: "USD", Rate: 1.0876, RateDate: rateDate, Source: "ECB"},
		{Iso: "GBP", Rate: 0.8521, RateDate: rateDate, Source: "ECB"},
		{Iso: "JPY", Rate: 170.12, RateDate: rateDate, Source: "ECB"},
		{Iso: "CHF", Rate: 0.9724, RateDate: rateDate, Source: "ECB"},
	}
	if err := uow.ExchangeRateRepository().CreateBulk(ctx, rates); err != nil {
		log.Fatalf("Failed to seed exchange rates: %v", err)
	}

	// 5. Condition + REACH
	if err := uow.MeasureConditionRepository().CreateBulk(ctx, []*entity.MeasureCondition{
		{
			GoodsCode:       "61102000",
			CertificateCode: "N954",
			Action:          "Apply preferential duty",
			Box44Codes:      []string{"N954"},
			Notes:           ptr("GSP Form A or REX statement of origin"),
		},
	}); err != nil {
		log.Fatalf("Failed to seed measure conditions: %v", err)
	}

	if err := uow.ReachMapRepository().CreateBulk(ctx, []*entity.ReachMap{
		{
			GoodsCodePrefix: "611020",
			EntryNo:         "43",
			LimitValue:      ptr(30.0),
			Unit:            ptr("mg/kg"),
			TestMethod:      ptr("EN 14362-1"),
			ConditionalRule: ptr("Azo dyes releasing listed aromatic amines"),
		},
	}); err != nil {
		log.Fatalf("Failed to seed REACH map: %v", err)
	}

	// 6. Chunk index for the leaves
	var chunks []*entity.NomenclatureChunk
	for _, n := range nomenclature {
		if !n.IsLeaf {
			continue
		}
		res, err := embedder.Generate(ctx, n.DescriptionEn, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Fatalf("Failed to embed chunk for %s: %v", n.GoodsCode, err)
		}
		chunks = append(chunks, &entity.NomenclatureChunk{
			Id:        uuid.New(),
			GoodsCode: n.GoodsCode,
			Content:   n.DescriptionEn,
			Embedding: res.Embedding.Values,
			CreatedAt: time.Now(),
		})
	}
	if err := uow.NomenclatureChunkRepository().CreateBulk(ctx, chunks); err != nil {
		log.Fatalf("Failed to seed nomenclature chunks: %v", err)
	}
	log.Printf("%s %d nomenclature chunks", green("Seeded"), len(chunks))

	color.Green("Seeding completed.")
}
