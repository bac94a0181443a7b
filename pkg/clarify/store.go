package clarify

import "github.com/google/uuid"

// Store is the narrow keyed-session contract. Backed by an in-memory
// cache or Redis; the manager requires only these four operations plus
// the per-id exclusivity it layers on top itself.
type Store interface {
	// Create persists a new session under its id.
	Create(session *Session) error

	// Get returns the session or ErrSessionNotFound.
	Get(id uuid.UUID) (*Session, error)

	// Update overwrites the stored session. The caller must hold the
	// per-id lock while reading, mutating and updating.
	Update(session *Session) error

	// Delete removes the session. Deleting an absent id is a no-op.
	Delete(id uuid.UUID) error
}
