package rerank

import "context"

// Provider scores (query, document) pairs jointly with a cross-encoder
// model. Scores are raw model logits: comparable within one call, not
// across calls, and more precise than embedding similarity because the
// model reads both texts together.
type Provider interface {
	// Score returns one score per document, in input order.
	Score(ctx context.Context, query string, documents []string) ([]float64, error)

	// ModelName identifies the model for logging.
	ModelName() string
}
