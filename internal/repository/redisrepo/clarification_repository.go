package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"trade-compliance-be/pkg/clarify"
)

const keyPrefix = "clarify:session:"

// ClarificationRepository is the Redis clarify.Store binding, for
// deployments where clarification sessions must survive process
// restarts or be shared across replicas. The Redis key TTL is the
// session expiry.
type ClarificationRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewClarificationRepository(rdb *redis.Client, ttl time.Duration) *ClarificationRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ClarificationRepository{rdb: rdb, ttl: ttl}
}

func (r *ClarificationRepository) Create(session *clarify.Session) error {
	return r.set(session)
}

func (r *ClarificationRepository) Get(id uuid.UUID) (*clarify.Session, error) {
	data, err := r.rdb.Get(context.Background(), keyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, clarify.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session clarify.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ClarificationRepository) Update(session *clarify.Session) error {
	return r.set(session)
}

func (r *ClarificationRepository) Delete(id uuid.UUID) error {
	return r.rdb.Del(context.Background(), keyPrefix+id.String()).Err()
}

func (r *ClarificationRepository) set(session *clarify.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(context.Background(), keyPrefix+session.ID.String(), data, r.ttl).Err()
}
