package classify

import (
	"context"
	"fmt"

	"trade-compliance-be/internal/repository/unitofwork"
)

// Retriever runs the broad recall pass: top-K nearest nomenclature
// chunks by cosine similarity from the pgvector index.
type Retriever struct {
	TopK int
}

// Retrieve searches the vector index and returns a deduplicated
// candidate set carrying retrieval similarities. A store failure maps
// to ErrRetrievalUnavailable; callers may retry the whole
// classification, never a partial stage.
func (r Retriever) Retrieve(ctx context.Context, uow unitofwork.UnitOfWork, vector []float32) (CandidateSet, error) {
	scored, err := uow.NomenclatureChunkRepository().SearchSimilarWithScore(ctx, vector, r.TopK)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrievalUnavailable, err)
	}

	set := make(CandidateSet, 0, len(scored))
	for _, s := range scored {
		set = append(set, Candidate{
			Code:       s.Chunk.GoodsCode,
			Content:    s.Chunk.Content,
			Similarity: Similarity(s.Similarity),
		})
	}
	// The index is keyed by code, but the invariant is enforced here
	// rather than assumed.
	return set.Dedupe(), nil
}
