package implementation

import (
	"context"
	"errors"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/mapper"
	"trade-compliance-be/internal/model"
	"trade-compliance-be/internal/repository/contract"
	"trade-compliance-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoodsNomenclatureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GoodsNomenclatureMapper
}

func NewGoodsNomenclatureRepository(db *gorm.DB) contract.GoodsNomenclatureRepository {
	return &GoodsNomenclatureRepositoryImpl{
		db:     db,
		mapper: mapper.NewGoodsNomenclatureMapper(),
	}
}

func (r *GoodsNomenclatureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GoodsNomenclatureRepositoryImpl) Create(ctx context.Context, node *entity.GoodsNomenclature) error {
	m := r.mapper.ToModel(node)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GoodsNomenclatureRepositoryImpl) Upsert(ctx context.Context, node *entity.GoodsNomenclature) error {
	m := r.mapper.ToModel(node)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "goods_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"description_en", "level", "is_leaf", "valid_from", "valid_to", "updated_at"}),
	}).Create(m).Error
}

func (r *GoodsNomenclatureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GoodsNomenclature, error) {
	var m model.GoodsNomenclature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GoodsNomenclatureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GoodsNomenclature, error) {
	var models []*model.GoodsNomenclature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GoodsNomenclatureRepositoryImpl) FindByCodes(ctx context.Context, goodsCodes []string) ([]*entity.GoodsNomenclature, error) {
	if len(goodsCodes) == 0 {
		return nil, nil
	}
	var models []*model.GoodsNomenclature
	err := r.db.WithContext(ctx).
		Where("goods_code IN ?", goodsCodes).
		Order("goods_code ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GoodsNomenclatureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.GoodsNomenclature{}).Count(&count).Error
	return count, err
}
