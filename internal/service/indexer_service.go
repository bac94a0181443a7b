package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/specification"
	"trade-compliance-be/internal/repository/unitofwork"
	"trade-compliance-be/pkg/embedding"
	"trade-compliance-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IIndexerService interface {
	Consume(ctx context.Context) error
}

// indexerService keeps the vector index in step with the nomenclature
// table: each message re-chunks and re-embeds one goods code, replacing
// its old chunks in a single transaction.
type indexerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
) IIndexerService {
	return &indexerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (is *indexerService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, is.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (is *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedNomenclatureMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal index message: %v", err)
		msg.Ack() // malformed messages would retry forever
		return
	}

	log.Printf("[INFO] Reindexing nomenclature chunks for %s", payload.GoodsCode)

	uow := is.uowFactory.NewUnitOfWork(ctx)

	node, err := uow.GoodsNomenclatureRepository().FindOne(ctx, specification.ByGoodsCode{GoodsCode: payload.GoodsCode})
	if err != nil {
		log.Printf("[ERROR] Failed to get nomenclature %s: %v", payload.GoodsCode, err)
		msg.Nack()
		return
	}
	if node == nil {
		log.Printf("[WARN] Nomenclature %s not found, skipping", payload.GoodsCode)
		msg.Ack()
		return
	}

	content := fmt.Sprintf("HS %s (level %d): %s", node.GoodsCode, node.Level, node.DescriptionEn)

	chunks := utils.SplitText(content, 1500, 200)

	var newChunks []*entity.NomenclatureChunk
	for i, chunk := range chunks {
		res, err := is.embeddingProvider.Generate(ctx, chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of %s: %v", i, payload.GoodsCode, err)
			msg.Nack()
			return
		}

		newChunks = append(newChunks, &entity.NomenclatureChunk{
			Id:         uuid.New(),
			GoodsCode:  node.GoodsCode,
			Content:    chunk,
			Embedding:  res.Embedding.Values,
			ChunkIndex: i,
			CreatedAt:  time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.NomenclatureChunkRepository().DeleteByGoodsCode(ctx, node.GoodsCode); err != nil {
		log.Printf("[ERROR] Failed to delete old chunks for %s: %v", node.GoodsCode, err)
		msg.Nack()
		return
	}

	if err := uow.NomenclatureChunkRepository().CreateBulk(ctx, newChunks); err != nil {
		log.Printf("[ERROR] Failed to create chunks for %s: %v", node.GoodsCode, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit chunk replacement for %s: %v", node.GoodsCode, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Reindexed %s with %d chunks", node.GoodsCode, len(newChunks))
	msg.Ack()
}
