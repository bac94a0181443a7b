package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGate() Gate {
	return Gate{
		ConfidenceThreshold: 0.62,
		MarginThreshold:     0.07,
		MaxOptions:          5,
	}
}

func TestGateCommitsAboveBothThresholds(t *testing.T) {
	set := CandidateSet{
		{Code: "61102000", Content: "Of cotton", Probability: 0.91},
		{Code: "61103000", Content: "Of man-made fibres", Probability: 0.71},
	}

	decision := defaultGate().Decide(set)

	require.True(t, decision.IsCommitted())
	assert.Equal(t, "61102000", decision.Committed.Code)
	assert.Equal(t, Probability(0.91), decision.Committed.Probability)
	assert.InDelta(t, 0.20, float64(decision.Committed.Margin), 1e-9)
}

func TestGateAbstainsOnLowConfidence(t *testing.T) {
	set := CandidateSet{
		{Code: "61102000", Content: "Of cotton", Probability: 0.55},
		{Code: "61103000", Content: "Of man-made fibres", Probability: 0.30},
	}

	decision := defaultGate().Decide(set)

	require.False(t, decision.IsCommitted())
	require.NotNil(t, decision.Clarification)
	assert.Len(t, decision.Clarification.Options, 2)
	assert.Equal(t, "61102000", decision.Clarification.Options[0].Code)
	assert.Equal(t, "Of cotton", decision.Clarification.Options[0].Label)
}

func TestGateAbstainsOnThinMargin(t *testing.T) {
	// Both above confidence, but nearly tied: the margin rule abstains.
	set := CandidateSet{
		{Code: "61102000", Probability: 0.70},
		{Code: "61103000", Probability: 0.68},
	}

	decision := defaultGate().Decide(set)

	assert.False(t, decision.IsCommitted())
}

func TestGateSingleCandidateGatesOnConfidenceAlone(t *testing.T) {
	t.Run("commits above threshold", func(t *testing.T) {
		decision := defaultGate().Decide(CandidateSet{{Code: "61102000", Probability: 0.65}})
		require.True(t, decision.IsCommitted())
		assert.Equal(t, UnboundedMargin, decision.Committed.Margin)
	})

	t.Run("abstains below threshold", func(t *testing.T) {
		decision := defaultGate().Decide(CandidateSet{{Code: "61102000", Probability: 0.50}})
		assert.False(t, decision.IsCommitted())
	})
}

func TestGateEmptySetIsTerminalClarification(t *testing.T) {
	decision := defaultGate().Decide(nil)

	require.False(t, decision.IsCommitted())
	require.NotNil(t, decision.Clarification)
	assert.Empty(t, decision.Clarification.Options)
}

func TestGateThresholdMonotonicity(t *testing.T) {
	// Raising either threshold can only turn commits into abstentions,
	// never the reverse.
	set := CandidateSet{
		{Code: "61102000", Probability: 0.75},
		{Code: "61103000", Probability: 0.60},
	}

	committedAt := func(conf Probability, margin Margin) bool {
		g := Gate{ConfidenceThreshold: conf, MarginThreshold: margin, MaxOptions: 5}
		return g.Decide(set).IsCommitted()
	}

	confLevels := []Probability{0.5, 0.62, 0.75, 0.80, 0.95}
	for i := 1; i < len(confLevels); i++ {
		lower := committedAt(confLevels[i-1], 0.07)
		higher := committedAt(confLevels[i], 0.07)
		if higher && !lower {
			t.Fatalf("raising confidence threshold %v -> %v flipped abstain to commit", confLevels[i-1], confLevels[i])
		}
	}

	marginLevels := []Margin{0.01, 0.07, 0.10, 0.20, 0.50}
	for i := 1; i < len(marginLevels); i++ {
		lower := committedAt(0.62, marginLevels[i-1])
		higher := committedAt(0.62, marginLevels[i])
		if higher && !lower {
			t.Fatalf("raising margin threshold %v -> %v flipped abstain to commit", marginLevels[i-1], marginLevels[i])
		}
	}
}

func TestGateOptionsTruncatedToMaxOptions(t *testing.T) {
	g := Gate{ConfidenceThreshold: 0.99, MarginThreshold: 0.5, MaxOptions: 2}

	set := CandidateSet{
		{Code: "a", Probability: 0.5},
		{Code: "b", Probability: 0.4},
		{Code: "c", Probability: 0.3},
	}

	decision := g.Decide(set)
	require.NotNil(t, decision.Clarification)
	assert.Len(t, decision.Clarification.Options, 2)
}
