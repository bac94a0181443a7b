package implementation

import (
	"context"
	"time"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/mapper"
	"trade-compliance-be/internal/model"
	"trade-compliance-be/internal/repository/contract"
	"trade-compliance-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ImportMeasureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeasureMapper
}

func NewImportMeasureRepository(db *gorm.DB) contract.ImportMeasureRepository {
	return &ImportMeasureRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeasureMapper(),
	}
}

func (r *ImportMeasureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ImportMeasureRepositoryImpl) Create(ctx context.Context, measure *entity.ImportMeasure) error {
	m := r.mapper.ImportToModel(measure)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	measure.Id = m.Id
	return nil
}

func (r *ImportMeasureRepositoryImpl) CreateBulk(ctx context.Context, measures []*entity.ImportMeasure) error {
	if len(measures) == 0 {
		return nil
	}
	models := make([]*model.ImportMeasure, len(measures))
	for i, im := range measures {
		models[i] = r.mapper.ImportToModel(im)
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

func (r *ImportMeasureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ImportMeasure, error) {
	var models []*model.ImportMeasure
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ImportsToEntities(models), nil
}

func (r *ImportMeasureRepositoryImpl) FindApplicable(ctx context.Context, goodsCode string, originGroups []string, asOf time.Time) ([]*entity.ImportMeasure, error) {
	groups := append([]string{specification.ErgaOmnes}, originGroups...)
	var models []*model.ImportMeasure
	query := r.db.WithContext(ctx).
		Where("goods_code = ?", goodsCode).
		Where("origin_group IN ?", groups)
	err := specification.ValidOn{Date: asOf}.Apply(query).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ImportsToEntities(models), nil
}

func (r *ImportMeasureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.ImportMeasure{}).Count(&count).Error
	return count, err
}

type ExportMeasureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeasureMapper
}

func NewExportMeasureRepository(db *gorm.DB) contract.ExportMeasureRepository {
	return &ExportMeasureRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeasureMapper(),
	}
}

func (r *ExportMeasureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExportMeasureRepositoryImpl) Create(ctx context.Context, measure *entity.ExportMeasure) error {
	m := r.mapper.ExportToModel(measure)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	measure.Id = m.Id
	return nil
}

func (r *ExportMeasureRepositoryImpl) CreateBulk(ctx context.Context, measures []*entity.ExportMeasure) error {
	if len(measures) == 0 {
		return nil
	}
	models := make([]*model.ExportMeasure, len(measures))
	for i, em := range measures {
		models[i] = r.mapper.ExportToModel(em)
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

func (r *ExportMeasureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExportMeasure, error) {
	var models []*model.ExportMeasure
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ExportsToEntities(models), nil
}

func (r *ExportMeasureRepositoryImpl) FindApplicable(ctx context.Context, goodsCode string, destinationGroups []string, asOf time.Time) ([]*entity.ExportMeasure, error) {
	groups := append([]string{specification.ErgaOmnes}, destinationGroups...)
	var models []*model.ExportMeasure
	query := r.db.WithContext(ctx).
		Where("goods_code = ?", goodsCode).
		Where("destination_group IN ?", groups)
	err := specification.ValidOn{Date: asOf}.Apply(query).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ExportsToEntities(models), nil
}

func (r *ExportMeasureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.ExportMeasure{}).Count(&count).Error
	return count, err
}
