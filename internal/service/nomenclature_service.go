package service

import (
	"context"
	"encoding/json"
	"log"

	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/unitofwork"
	"trade-compliance-be/pkg/events"
	pktNats "trade-compliance-be/pkg/nats"
)

type INomenclatureService interface {
	// Upsert writes one nomenclature node and schedules its chunks for
	// reindexing on the internal bus.
	Upsert(ctx context.Context, req *dto.UpsertNomenclatureRequest) error
}

type nomenclatureService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewNomenclatureService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) INomenclatureService {
	return &nomenclatureService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *nomenclatureService) Upsert(ctx context.Context, req *dto.UpsertNomenclatureRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	node := &entity.GoodsNomenclature{
		GoodsCode:     req.GoodsCode,
		DescriptionEn: req.DescriptionEn,
		Level:         req.Level,
		IsLeaf:        req.IsLeaf,
		ValidFrom:     req.ValidFrom,
		ValidTo:       req.ValidTo,
	}

	if err := uow.GoodsNomenclatureRepository().Upsert(ctx, node); err != nil {
		return err
	}

	msgPayload := dto.PublishEmbedNomenclatureMessage{GoodsCode: req.GoodsCode}
	msgJSON, err := json.Marshal(msgPayload)
	if err != nil {
		return err
	}
	if err := s.publisherService.Publish(ctx, msgJSON); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewNomenclatureUpdated(req.GoodsCode)); err != nil {
			log.Printf("[WARN] Failed to publish nomenclature event: %v", err)
		}
	}

	return nil
}
