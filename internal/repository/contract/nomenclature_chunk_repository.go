package contract

import (
	"context"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/specification"
)

// ScoredChunk wraps a NomenclatureChunk with its cosine similarity to a
// query vector.
type ScoredChunk struct {
	Chunk      *entity.NomenclatureChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type NomenclatureChunkRepository interface {
	Create(ctx context.Context, chunk *entity.NomenclatureChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.NomenclatureChunk) error
	DeleteByGoodsCode(ctx context.Context, goodsCode string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NomenclatureChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns the limit nearest chunks by cosine
	// similarity, ordered by similarity descending then goods code ascending.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredChunk, error)
}
