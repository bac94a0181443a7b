package clarify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/pkg/classify"
)

// AnswerResult is the outcome of one answer attempt.
type AnswerResult struct {
	// Resolved is set when the answer uniquely identified a code.
	Resolved bool
	Code     string

	// Reprompt is set when the answer was ambiguous or invalid and the
	// session stays open for another round.
	Reprompt bool
	Options  []classify.Option

	// Expired is set when the round ceiling was hit on this attempt.
	Expired bool

	// Round is the answer-attempt count after this attempt, whatever
	// the outcome.
	Round int
}

// Manager owns the clarification session state machine:
//
//	Open --answer(valid option)--> Resolved   (terminal)
//	Open --answer(invalid)------> Open        (round++, up to MaxRounds)
//	Open --round ceiling--------> Expired     (terminal)
//
// Mutations on one session are serialized by a per-id lock so two
// near-simultaneous answers cannot double-advance the round counter.
type Manager struct {
	store     Store
	maxRounds int
	log       logger.ILogger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewManager(store Store, maxRounds int, log logger.ILogger) *Manager {
	if maxRounds <= 0 {
		maxRounds = 3
	}
	return &Manager{
		store:     store,
		maxRounds: maxRounds,
		log:       log,
		locks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

// Create opens a session for a clarification decision. Session creation
// is the last effect of a gate decision: all pipeline stages already
// succeeded when this runs, so a cancelled request never leaves a
// half-created session.
func (m *Manager) Create(query classify.Query, c *classify.Clarification) (*Session, error) {
	session := &Session{
		ID:        uuid.New(),
		State:     StateOpen,
		Query:     query,
		Options:   c.Options,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.Create(session); err != nil {
		return nil, err
	}
	m.log.Info("clarify", "session opened", map[string]interface{}{
		"session_id": session.ID.String(),
		"options":    len(session.Options),
	})
	return session, nil
}

// Answer applies one answer to an open session. A valid option code
// resolves the session exactly once; anything else re-prompts until the
// round ceiling flips the session to Expired. Terminal sessions fail
// with ErrSessionClosed.
func (m *Manager) Answer(id uuid.UUID, optionCode string) (*AnswerResult, error) {
	lock := m.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := m.store.Get(id)
	if err != nil {
		m.releaseLock(id)
		return nil, err
	}
	if session.Closed() {
		m.releaseLock(id)
		return nil, ErrSessionClosed
	}

	if code, ok := matchOption(session.Options, optionCode); ok {
		session.State = StateResolved
		session.ResolvedCode = code
		session.Round++
		if err := m.store.Update(session); err != nil {
			return nil, err
		}
		m.releaseLock(id)
		m.log.Info("clarify", "session resolved", map[string]interface{}{
			"session_id": id.String(),
			"code":       code,
		})
		return &AnswerResult{Resolved: true, Code: code, Round: session.Round}, nil
	}

	session.Round++
	if session.Round >= m.maxRounds {
		session.State = StateExpired
		if err := m.store.Update(session); err != nil {
			return nil, err
		}
		m.releaseLock(id)
		m.log.Warn("clarify", "session expired after round ceiling", map[string]interface{}{
			"session_id": id.String(),
			"rounds":     session.Round,
		})
		return &AnswerResult{Expired: true, Round: session.Round}, nil
	}

	if err := m.store.Update(session); err != nil {
		return nil, err
	}
	return &AnswerResult{
		Reprompt: true,
		Options:  session.Options,
		Round:    session.Round,
	}, nil
}

// Get returns a session by id for inspection.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	return m.store.Get(id)
}

// Delete discards a session, typically after its resolution was
// consumed.
func (m *Manager) Delete(id uuid.UUID) error {
	m.releaseLock(id)
	return m.store.Delete(id)
}

// releaseLock drops the per-id mutex entry. Called on every terminal
// transition: terminal sessions take no further answers, so keeping the
// entry would only grow the map for the process lifetime.
func (m *Manager) releaseLock(id uuid.UUID) {
	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()
}

// matchOption accepts a code that uniquely identifies one offered
// option. An answer that matches nothing, or would match more than one
// option as a prefix, is ambiguous.
func matchOption(options []classify.Option, answer string) (string, bool) {
	if answer == "" {
		return "", false
	}
	for _, o := range options {
		if o.Code == answer {
			return o.Code, true
		}
	}
	// Prefix answers are allowed only when unambiguous.
	match := ""
	for _, o := range options {
		if len(answer) < len(o.Code) && o.Code[:len(answer)] == answer {
			if match != "" {
				return "", false
			}
			match = o.Code
		}
	}
	return match, match != ""
}

func (m *Manager) sessionLock(id uuid.UUID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	m.locks[id] = l
	return l
}
