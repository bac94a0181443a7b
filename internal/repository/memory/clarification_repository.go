package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"trade-compliance-be/pkg/clarify"
)

// ClarificationRepository is the in-memory clarify.Store binding.
// Expired entries are evicted by the cache itself; a Get after
// eviction reports ErrSessionNotFound, which callers treat the same as
// an explicit expiry.
type ClarificationRepository struct {
	cache *cache.Cache
}

func NewClarificationRepository(ttl time.Duration) *ClarificationRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ClarificationRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *ClarificationRepository) Create(session *clarify.Session) error {
	r.cache.Set(session.ID.String(), session, cache.DefaultExpiration)
	return nil
}

func (r *ClarificationRepository) Get(id uuid.UUID) (*clarify.Session, error) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*clarify.Session), nil
	}
	return nil, clarify.ErrSessionNotFound
}

func (r *ClarificationRepository) Update(session *clarify.Session) error {
	r.cache.Set(session.ID.String(), session, cache.DefaultExpiration)
	return nil
}

func (r *ClarificationRepository) Delete(id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}
