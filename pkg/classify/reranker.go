package classify

import (
	"context"
	"fmt"

	"trade-compliance-be/pkg/rerank"
)

// Reranker runs the precise pass: joint (query, nomenclature) scoring
// of the retrieval shortlist with a cross-encoder, then truncation to
// the top-N. The two-stage design buys broad recall cheaply and spends
// the expensive model only on the shortlist.
type Reranker struct {
	Provider rerank.Provider
	TopN     int
	Ordering OrderingPolicy
}

// Rerank scores every candidate pair, sorts by reranker score strictly
// descending (ties: retrieval similarity, then lexical code order) and
// truncates to top-N. An empty input passes through untouched.
func (r Reranker) Rerank(ctx context.Context, query string, set CandidateSet) (CandidateSet, error) {
	if len(set) == 0 {
		return set, nil
	}

	docs := make([]string, len(set))
	for i, c := range set {
		docs[i] = c.Content
	}

	scores, err := r.Provider.Score(ctx, query, docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRerankUnavailable, err)
	}
	if len(scores) != len(set) {
		return nil, fmt.Errorf("%w: %d scores for %d candidates", ErrRerankUnavailable, len(scores), len(set))
	}

	for i := range set {
		set[i].Rerank = RerankScore(scores[i])
	}

	policy := r.Ordering
	if policy == nil {
		policy = DefaultOrdering
	}
	set.SortByRerank(policy)
	return set.Truncate(r.TopN), nil
}
