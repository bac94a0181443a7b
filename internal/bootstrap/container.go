package bootstrap

import (
	"log"

	"trade-compliance-be/internal/config"
	"trade-compliance-be/internal/controller"
	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/internal/repository/memory"
	"trade-compliance-be/internal/repository/redisrepo"
	"trade-compliance-be/internal/repository/unitofwork"
	"trade-compliance-be/internal/service"
	"trade-compliance-be/pkg/clarify"
	"trade-compliance-be/pkg/classify"
	"trade-compliance-be/pkg/embedding"
	"trade-compliance-be/pkg/llm/ollama"
	pktNats "trade-compliance-be/pkg/nats"
	"trade-compliance-be/pkg/rerank"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ClassifyController     controller.IClassifyController
	ComplianceController   controller.IComplianceController
	NomenclatureController controller.INomenclatureController

	// Background services (exposed for main.go to run)
	IndexerService service.IIndexerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Internal event bus (index maintenance)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	embeddingProvider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)

	rerankProvider := rerank.NewHTTPProvider(cfg.Ai.RerankBaseURL, cfg.Ai.RerankModel)
	log.Printf("[INFO] Using Rerank Provider: %s", cfg.Ai.RerankModel)

	llmProvider := ollama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel)
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Calibrator: a fitted model is a startup precondition, the gate
	// never sees uncalibrated scores.
	calibrator, err := classify.LoadLogisticCalibrator(cfg.Ai.CalibratorPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load calibrator from %s: %v", cfg.Ai.CalibratorPath, err)
	}

	// 5. Classification pipeline
	pipeline := classify.NewPipeline(
		embeddingProvider,
		classify.Retriever{TopK: cfg.Classify.TopKRetrieval},
		classify.Reranker{Provider: rerankProvider, TopN: cfg.Classify.TopNRerank},
		calibrator,
		classify.Gate{
			ConfidenceThreshold: classify.Probability(cfg.Classify.ConfidenceThreshold),
			MarginThreshold:     classify.Margin(cfg.Classify.MarginThreshold),
			MaxOptions:          cfg.Classify.TopNRerank,
		},
		nil, // DefaultOrdering
		sysLogger,
	)

	// 6. Clarification session store
	var sessionStore clarify.Store
	if cfg.Session.StoreBackend == "redis" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
		}
		sessionStore = redisrepo.NewClarificationRepository(redis.NewClient(opts), cfg.Session.TTL)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionStore = memory.NewClarificationRepository(cfg.Session.TTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}
	sessionManager := clarify.NewManager(sessionStore, cfg.Session.MaxRounds, sysLogger)

	// 7. Audit events
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 8. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Ai.IndexTopicName)
	indexerService := service.NewIndexerService(pubSub, cfg.Ai.IndexTopicName, uowFactory, embeddingProvider)

	classificationService := service.NewClassificationService(uowFactory, pipeline, sessionManager, natsPub)
	complianceService := service.NewComplianceService(uowFactory, sysLogger)
	extractorService := service.NewExtractorService(llmProvider, sysLogger)
	explainerService := service.NewExplainerService(llmProvider, sysLogger)
	nomenclatureService := service.NewNomenclatureService(uowFactory, publisherService, natsPub)

	// 9. Controllers
	return &Container{
		ClassifyController:     controller.NewClassifyController(classificationService, extractorService),
		ComplianceController:   controller.NewComplianceController(complianceService, explainerService),
		NomenclatureController: controller.NewNomenclatureController(nomenclatureService),
		IndexerService:         indexerService,
		Logger:                 sysLogger,
	}
}
