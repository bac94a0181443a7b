package classify

// Scores travel through the pipeline at three incompatible scales:
// cosine similarity from retrieval, raw cross-encoder logits from
// reranking, and calibrated probabilities. Each gets its own defined
// type so a stage cannot accidentally compare across scales; the
// abstention gate only ever consumes Probability values.

// Similarity is a cosine similarity from the vector index, in [-1, 1]
// (in practice [0, 1] for normalized embeddings).
type Similarity float64

// RerankScore is a raw cross-encoder logit. Comparable within a single
// query's candidate set, not across queries.
type RerankScore float64

// Probability is a calibrated confidence in [0, 1]. Probabilities in a
// candidate set are independent confidences, not a distribution; they
// need not sum to one.
type Probability float64

// Margin is the gap between the top and second calibrated
// probabilities. A single-candidate set has no second probability and
// is treated as having unbounded margin.
type Margin float64

// UnboundedMargin satisfies any margin threshold.
const UnboundedMargin = Margin(1.0)
