package contract

import (
	"context"
	"time"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/specification"
)

type ImportMeasureRepository interface {
	Create(ctx context.Context, measure *entity.ImportMeasure) error
	CreateBulk(ctx context.Context, measures []*entity.ImportMeasure) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ImportMeasure, error)
	// FindApplicable returns measures for the goods code whose origin group
	// is ERGA OMNES or matches one of the given groups, valid on the given
	// date, ordered by id for stable output.
	FindApplicable(ctx context.Context, goodsCode string, originGroups []string, asOf time.Time) ([]*entity.ImportMeasure, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ExportMeasureRepository interface {
	Create(ctx context.Context, measure *entity.ExportMeasure) error
	CreateBulk(ctx context.Context, measures []*entity.ExportMeasure) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExportMeasure, error)
	FindApplicable(ctx context.Context, goodsCode string, destinationGroups []string, asOf time.Time) ([]*entity.ExportMeasure, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
