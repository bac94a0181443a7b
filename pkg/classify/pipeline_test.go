package classify

import (
	"context"
	"errors"
	"testing"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/internal/repository/contract"
	"trade-compliance-be/internal/repository/specification"
	"trade-compliance-be/internal/repository/unitofwork"
	"trade-compliance-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeEncoder struct {
	err error
}

func (f *fakeEncoder) Generate(ctx context.Context, text string, taskType string) (*embedding.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.Response{Embedding: embedding.ResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}}}, nil
}

type fakeChunkRepo struct {
	scored []*contract.ScoredChunk
	err    error
}

func (f *fakeChunkRepo) Create(ctx context.Context, chunk *entity.NomenclatureChunk) error {
	return nil
}
func (f *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.NomenclatureChunk) error {
	return nil
}
func (f *fakeChunkRepo) DeleteByGoodsCode(ctx context.Context, goodsCode string) error {
	return nil
}
func (f *fakeChunkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NomenclatureChunk, error) {
	return nil, nil
}
func (f *fakeChunkRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.scored)), nil
}
func (f *fakeChunkRepo) SearchSimilarWithScore(ctx context.Context, vec []float32, limit int) ([]*contract.ScoredChunk, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.scored) {
		return f.scored[:limit], nil
	}
	return f.scored, nil
}

type fakeUow struct {
	chunks *fakeChunkRepo
}

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }
func (f *fakeUow) NomenclatureChunkRepository() contract.NomenclatureChunkRepository {
	return f.chunks
}
func (f *fakeUow) GoodsNomenclatureRepository() contract.GoodsNomenclatureRepository { return nil }
func (f *fakeUow) ImportMeasureRepository() contract.ImportMeasureRepository         { return nil }
func (f *fakeUow) ExportMeasureRepository() contract.ExportMeasureRepository         { return nil }
func (f *fakeUow) MeasureConditionRepository() contract.MeasureConditionRepository   { return nil }
func (f *fakeUow) VatRateRepository() contract.VatRateRepository                     { return nil }
func (f *fakeUow) ExchangeRateRepository() contract.ExchangeRateRepository           { return nil }
func (f *fakeUow) ReachMapRepository() contract.ReachMapRepository                   { return nil }

var _ unitofwork.UnitOfWork = (*fakeUow)(nil)

// fakeReranker scores documents by a fixed map keyed on content.
type fakeReranker struct {
	scores map[string]float64
	err    error
}

func (f *fakeReranker) Score(ctx context.Context, query string, documents []string) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]float64, len(documents))
	for i, d := range documents {
		out[i] = f.scores[d]
	}
	return out, nil
}

func (f *fakeReranker) ModelName() string { return "fake-cross-encoder" }

// fixedCalibrator maps rerank scores straight to probabilities by a
// lookup; monotone for the fixtures used here.
type fixedCalibrator struct {
	probs map[string]float64
}

func (f *fixedCalibrator) Calibrate(set CandidateSet) (CandidateSet, error) {
	for i := range set {
		set[i].Probability = Probability(f.probs[set[i].Code])
	}
	return set, nil
}

func scoredChunk(code, content string, similarity float64) *contract.ScoredChunk {
	return &contract.ScoredChunk{
		Chunk:      &entity.NomenclatureChunk{GoodsCode: code, Content: content},
		Similarity: similarity,
	}
}

func newTestPipeline(uow *fakeUow, reranker *fakeReranker, calibrator Calibrator) *Pipeline {
	return NewPipeline(
		&fakeEncoder{},
		Retriever{TopK: 20},
		Reranker{Provider: reranker, TopN: 5},
		calibrator,
		Gate{ConfidenceThreshold: 0.62, MarginThreshold: 0.07, MaxOptions: 5},
		nil,
		logger.NewNopLogger(),
	)
}

// --- Tests ---

func TestPipelineCommitsConfidentQuery(t *testing.T) {
	// The "cotton hoodies" scenario: cotton jerseys score far above the
	// man-made fibre alternative, so the pipeline commits to 61102000.
	uow := &fakeUow{chunks: &fakeChunkRepo{scored: []*contract.ScoredChunk{
		scoredChunk("61102000", "Of cotton", 0.91),
		scoredChunk("61103000", "Of man-made fibres", 0.85),
		scoredChunk("62011000", "Overcoats, not knitted", 0.60),
	}}}
	reranker := &fakeReranker{scores: map[string]float64{
		"Of cotton":              2.8,
		"Of man-made fibres":     0.9,
		"Overcoats, not knitted": -1.5,
	}}
	calibrator := &fixedCalibrator{probs: map[string]float64{
		"61102000": 0.91,
		"61103000": 0.71,
		"62011000": 0.12,
	}}

	p := newTestPipeline(uow, reranker, calibrator)

	decision, err := p.Classify(context.Background(), uow, Query{Description: "cotton hoodies", Origin: "PK", Destination: "DE"})
	require.NoError(t, err)

	require.True(t, decision.IsCommitted())
	assert.Equal(t, "61102000", decision.Committed.Code)
	assert.Equal(t, Probability(0.91), decision.Committed.Probability)
	assert.InDelta(t, 0.20, float64(decision.Committed.Margin), 1e-9)
}

func TestPipelineAbstainsOnAmbiguousQuery(t *testing.T) {
	uow := &fakeUow{chunks: &fakeChunkRepo{scored: []*contract.ScoredChunk{
		scoredChunk("61102000", "Of cotton", 0.84),
		scoredChunk("61103000", "Of man-made fibres", 0.83),
	}}}
	reranker := &fakeReranker{scores: map[string]float64{
		"Of cotton":          0.4,
		"Of man-made fibres": 0.3,
	}}
	calibrator := &fixedCalibrator{probs: map[string]float64{
		"61102000": 0.55,
		"61103000": 0.51,
	}}

	p := newTestPipeline(uow, reranker, calibrator)

	decision, err := p.Classify(context.Background(), uow, Query{Description: "hoodies"})
	require.NoError(t, err)

	require.False(t, decision.IsCommitted())
	require.NotNil(t, decision.Clarification)
	assert.Len(t, decision.Clarification.Options, 2)
	assert.Equal(t, "61102000", decision.Clarification.Options[0].Code)
}

func TestPipelineDeterministic(t *testing.T) {
	newFixture := func() (*fakeUow, *fakeReranker, *fixedCalibrator) {
		uow := &fakeUow{chunks: &fakeChunkRepo{scored: []*contract.ScoredChunk{
			scoredChunk("61102000", "Of cotton", 0.91),
			scoredChunk("61103000", "Of man-made fibres", 0.85),
		}}}
		reranker := &fakeReranker{scores: map[string]float64{
			"Of cotton":          2.8,
			"Of man-made fibres": 0.9,
		}}
		calibrator := &fixedCalibrator{probs: map[string]float64{
			"61102000": 0.91,
			"61103000": 0.71,
		}}
		return uow, reranker, calibrator
	}

	q := Query{Description: "cotton hoodies"}

	uow, reranker, calibrator := newFixture()
	p := newTestPipeline(uow, reranker, calibrator)
	first, err := p.Classify(context.Background(), uow, q)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		uow, reranker, calibrator := newFixture()
		p := newTestPipeline(uow, reranker, calibrator)
		again, err := p.Classify(context.Background(), uow, q)
		require.NoError(t, err)

		assert.Equal(t, first.IsCommitted(), again.IsCommitted())
		assert.Equal(t, first.Committed.Code, again.Committed.Code)
		assert.Equal(t, first.Committed.Probability, again.Committed.Probability)
		assert.Equal(t, first.Committed.Margin, again.Committed.Margin)
		assert.Equal(t, first.Candidates.Codes(), again.Candidates.Codes())
	}
}

func TestPipelineEmptyRetrievalIsTerminalClarification(t *testing.T) {
	uow := &fakeUow{chunks: &fakeChunkRepo{}}
	p := newTestPipeline(uow, &fakeReranker{}, &fixedCalibrator{})

	decision, err := p.Classify(context.Background(), uow, Query{Description: "antimatter reactor"})
	require.NoError(t, err)

	require.False(t, decision.IsCommitted())
	require.NotNil(t, decision.Clarification)
	assert.Empty(t, decision.Clarification.Options)
}

func TestPipelineErrorTaxonomy(t *testing.T) {
	t.Run("invalid query", func(t *testing.T) {
		uow := &fakeUow{chunks: &fakeChunkRepo{}}
		p := newTestPipeline(uow, &fakeReranker{}, &fixedCalibrator{})

		_, err := p.Classify(context.Background(), uow, Query{Description: "   "})
		assert.True(t, errors.Is(err, ErrInvalidQuery))
	})

	t.Run("rerank unavailable", func(t *testing.T) {
		uow := &fakeUow{chunks: &fakeChunkRepo{scored: []*contract.ScoredChunk{
			scoredChunk("61102000", "Of cotton", 0.91),
		}}}
		p := newTestPipeline(uow, &fakeReranker{err: errors.New("scoring service down")}, &fixedCalibrator{})

		_, err := p.Classify(context.Background(), uow, Query{Description: "cotton hoodies"})
		assert.True(t, errors.Is(err, ErrRerankUnavailable))
	})

	t.Run("retrieval unavailable", func(t *testing.T) {
		uow := &fakeUow{chunks: &fakeChunkRepo{err: errors.New("connection refused")}}
		p := newTestPipeline(uow, &fakeReranker{}, &fixedCalibrator{})

		_, err := p.Classify(context.Background(), uow, Query{Description: "cotton hoodies"})
		assert.True(t, errors.Is(err, ErrRetrievalUnavailable))
	})

	t.Run("encoder failure", func(t *testing.T) {
		uow := &fakeUow{chunks: &fakeChunkRepo{}}
		p := NewPipeline(
			&fakeEncoder{err: errors.New("model not loaded")},
			Retriever{TopK: 20},
			Reranker{Provider: &fakeReranker{}, TopN: 5},
			&fixedCalibrator{},
			Gate{ConfidenceThreshold: 0.62, MarginThreshold: 0.07, MaxOptions: 5},
			nil,
			logger.NewNopLogger(),
		)

		_, err := p.Classify(context.Background(), uow, Query{Description: "cotton hoodies"})
		assert.True(t, errors.Is(err, ErrEncoding))
	})
}

func TestPipelineDeduplicatesRetrievedCodes(t *testing.T) {
	uow := &fakeUow{chunks: &fakeChunkRepo{scored: []*contract.ScoredChunk{
		scoredChunk("61102000", "Of cotton", 0.91),
		scoredChunk("61102000", "Of cotton, second chunk", 0.88),
		scoredChunk("61103000", "Of man-made fibres", 0.85),
	}}}
	reranker := &fakeReranker{scores: map[string]float64{
		"Of cotton":          2.8,
		"Of man-made fibres": 0.9,
	}}
	calibrator := &fixedCalibrator{probs: map[string]float64{
		"61102000": 0.91,
		"61103000": 0.71,
	}}

	p := newTestPipeline(uow, reranker, calibrator)

	decision, err := p.Classify(context.Background(), uow, Query{Description: "cotton hoodies"})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, code := range decision.Candidates.Codes() {
		if seen[code] {
			t.Fatalf("duplicate code %s in final candidate set", code)
		}
		seen[code] = true
	}
}
