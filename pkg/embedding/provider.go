package embedding

import "context"

// Task types hint the encoder how the text will be used. Some models
// encode queries and documents differently; providers that don't
// distinguish ignore the hint.
const (
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

// Response wraps a generated embedding vector.
type Response struct {
	Embedding ResponseEmbedding
}

type ResponseEmbedding struct {
	Values []float32
}

// Provider generates dense text embeddings. Deterministic for a fixed
// model version; implementations hold only a warm HTTP client and are
// safe for concurrent use.
type Provider interface {
	Generate(ctx context.Context, text string, taskType string) (*Response, error)
}
