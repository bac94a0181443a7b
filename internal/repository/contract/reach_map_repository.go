package contract

import (
	"context"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/specification"
)

type ReachMapRepository interface {
	Create(ctx context.Context, row *entity.ReachMap) error
	CreateBulk(ctx context.Context, rows []*entity.ReachMap) error
	// FindByCodePrefixes returns REACH entries whose prefix matches any of
	// the given goods code prefixes, longest match first.
	FindByCodePrefixes(ctx context.Context, prefixes []string) ([]*entity.ReachMap, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReachMap, error)
}
