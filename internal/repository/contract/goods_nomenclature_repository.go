package contract

import (
	"context"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/specification"
)

type GoodsNomenclatureRepository interface {
	Create(ctx context.Context, node *entity.GoodsNomenclature) error
	Upsert(ctx context.Context, node *entity.GoodsNomenclature) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GoodsNomenclature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GoodsNomenclature, error)
	// FindByCodes resolves a batch of exact goods codes, preserving only
	// codes that exist. Used for the hierarchy walk.
	FindByCodes(ctx context.Context, goodsCodes []string) ([]*entity.GoodsNomenclature, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
