package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Classify ClassifyConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingProvider string // "ollama"
	OllamaBaseURL     string
	EmbeddingModel    string
	RerankBaseURL     string
	RerankModel       string
	LLMProvider       string
	LLMModel          string
	CalibratorPath    string
	IndexTopicName    string
}

type ClassifyConfig struct {
	ConfidenceThreshold float64
	MarginThreshold     float64
	TopKRetrieval       int
	TopNRerank          int
}

type SessionConfig struct {
	StoreBackend string // "memory" or "redis"
	MaxRounds    int
	TTL          time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "bge-m3"),
			RerankBaseURL:     getEnv("RERANK_BASE_URL", "http://localhost:8080"),
			RerankModel:       getEnv("RERANK_MODEL", "bge-reranker-base"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
			CalibratorPath:    getEnv("CALIBRATOR_PATH", "models/calibrator.json"),
			IndexTopicName:    getEnv("INDEX_NOMENCLATURE_TOPIC_NAME", "INDEX_NOMENCLATURE"),
		},
		Classify: ClassifyConfig{
			ConfidenceThreshold: getEnvAsFloat("CONFIDENCE_THRESHOLD", 0.62),
			MarginThreshold:     getEnvAsFloat("MARGIN_THRESHOLD", 0.07),
			TopKRetrieval:       getEnvAsInt("TOP_K_RETRIEVAL", 32),
			TopNRerank:          getEnvAsInt("TOP_N_RERANK", 5),
		},
		Session: SessionConfig{
			StoreBackend: getEnv("SESSION_STORE", "memory"),
			MaxRounds:    getEnvAsInt("CLARIFICATION_MAX_ROUNDS", 3),
			TTL:          getEnvAsDuration("SESSION_TTL", 15*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
