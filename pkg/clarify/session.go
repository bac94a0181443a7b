package clarify

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"trade-compliance-be/pkg/classify"
)

// Session states. Resolved and Expired are terminal.
const (
	StateOpen     = "OPEN"
	StateResolved = "RESOLVED"
	StateExpired  = "EXPIRED"
)

var (
	// ErrSessionNotFound means the id is unknown or the session TTL
	// elapsed and the store evicted it.
	ErrSessionNotFound = errors.New("clarification session not found")

	// ErrSessionClosed means the session already reached a terminal
	// state and cannot take further answers.
	ErrSessionClosed = errors.New("clarification session closed")
)

// Session tracks one multi-turn disambiguation. The caller only ever
// holds the opaque ID; the candidate set stays server-side.
type Session struct {
	ID    uuid.UUID `json:"id"`
	State string    `json:"state"`

	// The original query, kept for re-running the pipeline after a
	// free-text refinement.
	Query classify.Query `json:"query"`

	// Options offered to the caller, ordered by calibrated probability.
	Options []classify.Option `json:"options"`

	// Round counts answer attempts so far.
	Round int `json:"round"`

	// ResolvedCode is set exactly once, on the Open -> Resolved
	// transition.
	ResolvedCode string `json:"resolved_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Closed reports whether the session is in a terminal state.
func (s *Session) Closed() bool {
	return s.State != StateOpen
}
