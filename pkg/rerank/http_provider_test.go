package rerank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMapsResultsBackToInputOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rerank", r.URL.Path)

		var req rerankRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "bge-reranker-base", req.Model)
		assert.Equal(t, "cotton hoodies", req.Query)
		require.Len(t, req.Documents, 3)

		// Results sorted by score, not input order.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"index": 2, "relevance_score": 3.1},
				{"index": 0, "relevance_score": 1.4},
				{"index": 1, "relevance_score": -0.8},
			},
		})
	}))
	defer server.Close()

	p := NewHTTPProvider(server.URL, "")

	scores, err := p.Score(context.Background(), "cotton hoodies", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.4, -0.8, 3.1}, scores)
}

func TestScoreEmptyDocuments(t *testing.T) {
	p := NewHTTPProvider("http://unreachable.invalid", "")

	scores, err := p.Score(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Nil(t, scores)
}

func TestScoreResultCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"index": 0, "relevance_score": 1.0},
			},
		})
	}))
	defer server.Close()

	p := NewHTTPProvider(server.URL, "")

	_, err := p.Score(context.Background(), "q", []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 results for 2 documents")
}

func TestScoreIndexOutOfRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"index": 0, "relevance_score": 1.0},
				{"index": 7, "relevance_score": 0.5},
			},
		})
	}))
	defer server.Close()

	p := NewHTTPProvider(server.URL, "")

	_, err := p.Score(context.Background(), "q", []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestScoreServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewHTTPProvider(server.URL, "")

	_, err := p.Score(context.Background(), "q", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rerank service error")
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "bge-reranker-base", NewHTTPProvider("http://x", "").ModelName())
	assert.Equal(t, "custom-ce", NewHTTPProvider("http://x", "custom-ce").ModelName())
}
