package classify

import "sort"

// Candidate is one HS code under consideration for a single request.
// Ephemeral: it exists only for the lifetime of one classification and
// is never persisted.
type Candidate struct {
	Code        string
	Content     string // nomenclature chunk text used for reranking
	Similarity  Similarity
	Rerank      RerankScore
	Probability Probability
}

// CandidateSet is an ordered sequence of candidates. Invariant: no two
// candidates share an HS code.
type CandidateSet []Candidate

// Dedupe drops repeated HS codes, keeping the first (highest-ranked)
// occurrence. The retrieval index is keyed by code so duplicates are
// unexpected, but the invariant is enforced here regardless.
func (s CandidateSet) Dedupe() CandidateSet {
	seen := make(map[string]bool, len(s))
	out := s[:0:0]
	for _, c := range s {
		if seen[c.Code] {
			continue
		}
		seen[c.Code] = true
		out = append(out, c)
	}
	return out
}

// Codes returns the candidate HS codes in set order.
func (s CandidateSet) Codes() []string {
	codes := make([]string, len(s))
	for i, c := range s {
		codes[i] = c.Code
	}
	return codes
}

// OrderingPolicy decides the order of two candidates that compare equal
// on the primary key of the current stage. It returns true when a
// should precede b.
type OrderingPolicy func(a, b Candidate) bool

// DefaultOrdering breaks ties by retrieval similarity (descending),
// then lexical HS-code order (ascending). The final code tiebreak keeps
// ranking stable and repeatable across runs.
func DefaultOrdering(a, b Candidate) bool {
	if a.Similarity != b.Similarity {
		return a.Similarity > b.Similarity
	}
	return a.Code < b.Code
}

// SortByRerank orders the set by reranker score descending, resolving
// exact ties through the policy.
func (s CandidateSet) SortByRerank(policy OrderingPolicy) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Rerank != s[j].Rerank {
			return s[i].Rerank > s[j].Rerank
		}
		return policy(s[i], s[j])
	})
}

// SortByProbability orders the set by calibrated probability
// descending, resolving exact ties through the policy.
func (s CandidateSet) SortByProbability(policy OrderingPolicy) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Probability != s[j].Probability {
			return s[i].Probability > s[j].Probability
		}
		return policy(s[i], s[j])
	})
}

// Truncate returns at most n candidates.
func (s CandidateSet) Truncate(n int) CandidateSet {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
