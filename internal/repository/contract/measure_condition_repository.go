package contract

import (
	"context"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/specification"
)

type MeasureConditionRepository interface {
	Create(ctx context.Context, condition *entity.MeasureCondition) error
	CreateBulk(ctx context.Context, conditions []*entity.MeasureCondition) error
	FindByGoodsCode(ctx context.Context, goodsCode string) ([]*entity.MeasureCondition, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MeasureCondition, error)
}
