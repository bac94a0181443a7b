package classify

import (
	"context"
	"fmt"

	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/internal/repository/unitofwork"
	"trade-compliance-be/pkg/embedding"
)

// Pipeline is the full classification decision chain:
// normalize -> encode -> retrieve -> rerank -> calibrate -> gate.
//
// Every stage is stateless per call and safe for concurrent use; the
// only mutable state lives behind the unit of work and the providers'
// HTTP clients. A stage fault aborts the whole attempt rather than
// degrading into a partial ranking, because a partial ranking would
// bias the abstention decision.
type Pipeline struct {
	encoder    embedding.Provider
	retriever  Retriever
	reranker   Reranker
	calibrator Calibrator
	gate       Gate
	ordering   OrderingPolicy
	log        logger.ILogger
}

// NewPipeline wires the pipeline stages. The ordering policy is shared
// by the rerank and probability sorts; nil selects DefaultOrdering.
func NewPipeline(
	encoder embedding.Provider,
	retriever Retriever,
	reranker Reranker,
	calibrator Calibrator,
	gate Gate,
	ordering OrderingPolicy,
	log logger.ILogger,
) *Pipeline {
	if ordering == nil {
		ordering = DefaultOrdering
	}
	reranker.Ordering = ordering
	return &Pipeline{
		encoder:    encoder,
		retriever:  retriever,
		reranker:   reranker,
		calibrator: calibrator,
		gate:       gate,
		ordering:   ordering,
		log:        log,
	}
}

// Classify resolves a query to a decision. Deterministic for fixed
// model versions and database state: identical inputs produce an
// identical decision.
func (p *Pipeline) Classify(ctx context.Context, uow unitofwork.UnitOfWork, q Query) (Decision, error) {
	canonical, err := Normalize(q)
	if err != nil {
		return Decision{}, err
	}

	res, err := p.encoder.Generate(ctx, canonical, embedding.TaskRetrievalQuery)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	set, err := p.retriever.Retrieve(ctx, uow, res.Embedding.Values)
	if err != nil {
		return Decision{}, err
	}

	if len(set) == 0 {
		p.log.Warn("classify", "retrieval returned no candidates", map[string]interface{}{
			"query": canonical,
		})
		return p.gate.Decide(nil), nil
	}

	set, err = p.reranker.Rerank(ctx, canonical, set)
	if err != nil {
		return Decision{}, err
	}

	set, err = p.calibrator.Calibrate(set)
	if err != nil {
		return Decision{}, err
	}
	set.SortByProbability(p.ordering)

	decision := p.gate.Decide(set)
	if decision.IsCommitted() {
		p.log.Info("classify", "committed classification", map[string]interface{}{
			"code":        decision.Committed.Code,
			"probability": float64(decision.Committed.Probability),
			"margin":      float64(decision.Committed.Margin),
		})
	} else {
		p.log.Info("classify", "abstained, needs clarification", map[string]interface{}{
			"options": len(decision.Clarification.Options),
			"margin":  float64(decision.Clarification.TopMargin),
		})
	}
	return decision, nil
}
