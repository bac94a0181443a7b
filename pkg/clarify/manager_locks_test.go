package clarify

import (
	"testing"

	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/pkg/classify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStore is a minimal Store for white-box lock accounting tests.
type mapStore struct {
	sessions map[uuid.UUID]*Session
}

func newMapStore() *mapStore {
	return &mapStore{sessions: make(map[uuid.UUID]*Session)}
}

func (s *mapStore) Create(session *Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *mapStore) Get(id uuid.UUID) (*Session, error) {
	if session, ok := s.sessions[id]; ok {
		return session, nil
	}
	return nil, ErrSessionNotFound
}

func (s *mapStore) Update(session *Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *mapStore) Delete(id uuid.UUID) error {
	delete(s.sessions, id)
	return nil
}

func (m *Manager) lockCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

func clarification() *classify.Clarification {
	return &classify.Clarification{
		Options: []classify.Option{
			{Code: "61102000", Label: "Of cotton"},
			{Code: "61103000", Label: "Of man-made fibres"},
		},
	}
}

func TestLocksReleasedWhenSessionsExpire(t *testing.T) {
	m := NewManager(newMapStore(), 1, logger.NewNopLogger())

	for i := 0; i < 100; i++ {
		session, err := m.Create(classify.Query{Description: "hoodies"}, clarification())
		require.NoError(t, err)

		result, err := m.Answer(session.ID, "99999999")
		require.NoError(t, err)
		require.True(t, result.Expired)
	}

	assert.Equal(t, 0, m.lockCount())
}

func TestLocksReleasedWhenSessionsResolve(t *testing.T) {
	m := NewManager(newMapStore(), 3, logger.NewNopLogger())

	var last uuid.UUID
	for i := 0; i < 10; i++ {
		session, err := m.Create(classify.Query{Description: "hoodies"}, clarification())
		require.NoError(t, err)
		last = session.ID

		result, err := m.Answer(session.ID, "61102000")
		require.NoError(t, err)
		require.True(t, result.Resolved)
	}

	assert.Equal(t, 0, m.lockCount())

	// Late answers against terminal or unknown sessions must not grow
	// the map either.
	_, err := m.Answer(last, "61103000")
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = m.Answer(uuid.New(), "61102000")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.lockCount())
}

func TestLockRetainedWhileSessionIsOpen(t *testing.T) {
	m := NewManager(newMapStore(), 3, logger.NewNopLogger())

	session, err := m.Create(classify.Query{Description: "hoodies"}, clarification())
	require.NoError(t, err)

	result, err := m.Answer(session.ID, "99999999")
	require.NoError(t, err)
	require.True(t, result.Reprompt)
	assert.Equal(t, 1, m.lockCount())

	require.NoError(t, m.Delete(session.ID))
	assert.Equal(t, 0, m.lockCount())
}
