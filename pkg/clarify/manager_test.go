package clarify_test

import (
	"errors"
	"testing"
	"time"

	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/internal/repository/memory"
	"trade-compliance-be/pkg/classify"
	"trade-compliance-be/pkg/clarify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *clarify.Manager {
	t.Helper()
	store := memory.NewClarificationRepository(time.Minute)
	return clarify.NewManager(store, 3, logger.NewNopLogger())
}

func twoOptions() *classify.Clarification {
	return &classify.Clarification{
		Options: []classify.Option{
			{Code: "61102000", Label: "Of cotton"},
			{Code: "61103000", Label: "Of man-made fibres"},
		},
	}
}

func TestManagerCreateOpensSession(t *testing.T) {
	m := newTestManager(t)

	session, err := m.Create(classify.Query{Description: "hoodies"}, twoOptions())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, clarify.StateOpen, session.State)
	assert.Equal(t, 0, session.Round)
	assert.Len(t, session.Options, 2)
}

func TestManagerAnswerResolvesExactlyOnce(t *testing.T) {
	m := newTestManager(t)
	session, err := m.Create(classify.Query{Description: "hoodies"}, twoOptions())
	require.NoError(t, err)

	result, err := m.Answer(session.ID, "61102000")
	require.NoError(t, err)
	assert.True(t, result.Resolved)
	assert.Equal(t, "61102000", result.Code)
	assert.Equal(t, 1, result.Round)

	stored, err := m.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, clarify.StateResolved, stored.State)
	assert.Equal(t, "61102000", stored.ResolvedCode)

	// A resolved session takes no further answers.
	_, err = m.Answer(session.ID, "61103000")
	assert.True(t, errors.Is(err, clarify.ErrSessionClosed))

	stored, err = m.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "61102000", stored.ResolvedCode)
}

func TestManagerInvalidAnswersRepromptThenExpire(t *testing.T) {
	m := newTestManager(t)
	session, err := m.Create(classify.Query{Description: "hoodies"}, twoOptions())
	require.NoError(t, err)

	// Rounds 1 and 2: reprompt with the same options.
	for round := 1; round <= 2; round++ {
		result, err := m.Answer(session.ID, "99999999")
		require.NoError(t, err)
		assert.True(t, result.Reprompt)
		assert.Equal(t, round, result.Round)
		assert.Len(t, result.Options, 2)
	}

	// Round 3 hits the ceiling.
	result, err := m.Answer(session.ID, "99999999")
	require.NoError(t, err)
	assert.True(t, result.Expired)
	assert.Equal(t, 3, result.Round)

	stored, err := m.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, clarify.StateExpired, stored.State)

	_, err = m.Answer(session.ID, "61102000")
	assert.True(t, errors.Is(err, clarify.ErrSessionClosed))
}

func TestManagerUnknownSession(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Answer(uuid.New(), "61102000")
	assert.True(t, errors.Is(err, clarify.ErrSessionNotFound))

	_, err = m.Get(uuid.New())
	assert.True(t, errors.Is(err, clarify.ErrSessionNotFound))
}

func TestManagerPrefixAnswers(t *testing.T) {
	m := newTestManager(t)

	t.Run("unambiguous prefix resolves", func(t *testing.T) {
		session, err := m.Create(classify.Query{Description: "hoodies"}, twoOptions())
		require.NoError(t, err)

		result, err := m.Answer(session.ID, "611020")
		require.NoError(t, err)
		assert.True(t, result.Resolved)
		assert.Equal(t, "61102000", result.Code)
	})

	t.Run("ambiguous prefix reprompts", func(t *testing.T) {
		session, err := m.Create(classify.Query{Description: "hoodies"}, twoOptions())
		require.NoError(t, err)

		// "6110" is a prefix of both options.
		result, err := m.Answer(session.ID, "6110")
		require.NoError(t, err)
		assert.True(t, result.Reprompt)
		assert.Equal(t, 1, result.Round)
	})

	t.Run("empty answer reprompts", func(t *testing.T) {
		session, err := m.Create(classify.Query{Description: "hoodies"}, twoOptions())
		require.NoError(t, err)

		result, err := m.Answer(session.ID, "")
		require.NoError(t, err)
		assert.True(t, result.Reprompt)
	})
}

func TestManagerDelete(t *testing.T) {
	m := newTestManager(t)
	session, err := m.Create(classify.Query{Description: "hoodies"}, twoOptions())
	require.NoError(t, err)

	require.NoError(t, m.Delete(session.ID))

	_, err = m.Get(session.ID)
	assert.True(t, errors.Is(err, clarify.ErrSessionNotFound))
}

func TestManagerSessionNoOptionsIsTerminalOnAnswer(t *testing.T) {
	m := newTestManager(t)
	session, err := m.Create(classify.Query{Description: "antimatter reactor"}, &classify.Clarification{})
	require.NoError(t, err)

	// No options means nothing can resolve; every answer burns a round.
	for round := 1; round <= 2; round++ {
		result, err := m.Answer(session.ID, "61102000")
		require.NoError(t, err)
		assert.True(t, result.Reprompt)
	}
	result, err := m.Answer(session.ID, "61102000")
	require.NoError(t, err)
	assert.True(t, result.Expired)
}
