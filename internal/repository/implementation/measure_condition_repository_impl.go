package implementation

import (
	"context"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/mapper"
	"trade-compliance-be/internal/model"
	"trade-compliance-be/internal/repository/contract"
	"trade-compliance-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MeasureConditionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeasureConditionMapper
}

func NewMeasureConditionRepository(db *gorm.DB) contract.MeasureConditionRepository {
	return &MeasureConditionRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeasureConditionMapper(),
	}
}

func (r *MeasureConditionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MeasureConditionRepositoryImpl) Create(ctx context.Context, condition *entity.MeasureCondition) error {
	m := r.mapper.ToModel(condition)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	condition.Id = m.Id
	return nil
}

func (r *MeasureConditionRepositoryImpl) CreateBulk(ctx context.Context, conditions []*entity.MeasureCondition) error {
	if len(conditions) == 0 {
		return nil
	}
	models := make([]*model.MeasureCondition, len(conditions))
	for i, c := range conditions {
		models[i] = r.mapper.ToModel(c)
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

func (r *MeasureConditionRepositoryImpl) FindByGoodsCode(ctx context.Context, goodsCode string) ([]*entity.MeasureCondition, error) {
	var models []*model.MeasureCondition
	err := r.db.WithContext(ctx).
		Where("goods_code = ?", goodsCode).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MeasureConditionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MeasureCondition, error) {
	var models []*model.MeasureCondition
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
