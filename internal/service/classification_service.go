package service

import (
	"context"
	"log"

	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/repository/unitofwork"
	"trade-compliance-be/pkg/classify"
	"trade-compliance-be/pkg/clarify"
	"trade-compliance-be/pkg/events"
	pktNats "trade-compliance-be/pkg/nats"

	"github.com/google/uuid"
)

type IClassificationService interface {
	Classify(ctx context.Context, req *dto.ClassifyRequest) (*dto.ClassifyResponse, error)
	Answer(ctx context.Context, sessionId uuid.UUID, req *dto.AnswerRequest) (*dto.AnswerResponse, error)
}

type classificationService struct {
	uowFactory     unitofwork.RepositoryFactory
	pipeline       *classify.Pipeline
	sessionManager *clarify.Manager
	eventPublisher *pktNats.Publisher
}

func NewClassificationService(
	uowFactory unitofwork.RepositoryFactory,
	pipeline *classify.Pipeline,
	sessionManager *clarify.Manager,
	eventPublisher *pktNats.Publisher,
) IClassificationService {
	return &classificationService{
		uowFactory:     uowFactory,
		pipeline:       pipeline,
		sessionManager: sessionManager,
		eventPublisher: eventPublisher,
	}
}

func (s *classificationService) Classify(ctx context.Context, req *dto.ClassifyRequest) (*dto.ClassifyResponse, error) {
	query := classify.Query{
		Description: req.Description,
		HSPrefix:    req.HSPrefix,
		Origin:      req.Origin,
		Destination: req.Destination,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	decision, err := s.pipeline.Classify(ctx, uow, query)
	if err != nil {
		return nil, err
	}

	res := &dto.ClassifyResponse{
		Candidates: candidatesToResponse(decision.Candidates),
	}

	if decision.IsCommitted() {
		res.Status = dto.StatusCommitted
		res.Committed = &dto.CommittedResponse{
			GoodsCode:   decision.Committed.Code,
			Probability: float64(decision.Committed.Probability),
			Margin:      float64(decision.Committed.Margin),
		}
		s.publish(ctx, events.NewClassificationCommitted(
			decision.Committed.Code,
			float64(decision.Committed.Probability),
			float64(decision.Committed.Margin),
		))
		return res, nil
	}

	// Session creation is the last effect of the decision: nothing
	// above this point allocated identifiers or wrote state.
	session, err := s.sessionManager.Create(query, decision.Clarification)
	if err != nil {
		return nil, err
	}

	res.Status = dto.StatusNeedsClarification
	res.Clarification = &dto.ClarificationResponse{
		QuestionId: session.ID.String(),
		Options:    optionsToResponse(session.Options),
		Round:      session.Round,
	}
	s.publish(ctx, events.NewClassificationAbstained(session.ID.String(), len(session.Options)))
	return res, nil
}

func (s *classificationService) Answer(ctx context.Context, sessionId uuid.UUID, req *dto.AnswerRequest) (*dto.AnswerResponse, error) {
	result, err := s.sessionManager.Answer(sessionId, req.OptionCode)
	if err != nil {
		return nil, err
	}

	switch {
	case result.Resolved:
		s.publish(ctx, events.NewClarificationResolved(sessionId.String(), result.Code, result.Round))
		// Resolution consumed; the session has no further use.
		if err := s.sessionManager.Delete(sessionId); err != nil {
			log.Printf("[WARN] Failed to discard resolved session %s: %v", sessionId, err)
		}
		return &dto.AnswerResponse{
			Status:    dto.StatusResolved,
			GoodsCode: result.Code,
			Round:     result.Round,
		}, nil
	case result.Expired:
		s.publish(ctx, events.NewClarificationExpired(sessionId.String(), result.Round))
		return &dto.AnswerResponse{
			Status: dto.StatusExpired,
			Round:  result.Round,
		}, nil
	default:
		return &dto.AnswerResponse{
			Status:  dto.StatusReprompt,
			Options: optionsToResponse(result.Options),
			Round:   result.Round,
		}, nil
	}
}

// publish sends an audit event; failures are logged and never block the
// decision path.
func (s *classificationService) publish(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", evt.EventType(), err)
	}
}

func candidatesToResponse(set classify.CandidateSet) []dto.CandidateResponse {
	out := make([]dto.CandidateResponse, len(set))
	for i, c := range set {
		out[i] = dto.CandidateResponse{
			GoodsCode:   c.Code,
			Content:     c.Content,
			Similarity:  float64(c.Similarity),
			RerankScore: float64(c.Rerank),
			Probability: float64(c.Probability),
		}
	}
	return out
}

func optionsToResponse(options []classify.Option) []dto.ClarificationOptionResponse {
	out := make([]dto.ClarificationOptionResponse, len(options))
	for i, o := range options {
		out[i] = dto.ClarificationOptionResponse{
			GoodsCode: o.Code,
			Label:     o.Label,
		}
	}
	return out
}
