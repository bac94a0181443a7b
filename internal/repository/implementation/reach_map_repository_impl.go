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

type ReachMapRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReachMapMapper
}

func NewReachMapRepository(db *gorm.DB) contract.ReachMapRepository {
	return &ReachMapRepositoryImpl{
		db:     db,
		mapper: mapper.NewReachMapMapper(),
	}
}

func (r *ReachMapRepositoryImpl) Create(ctx context.Context, row *entity.ReachMap) error {
	m := r.mapper.ToModel(row)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	row.Id = m.Id
	return nil
}

func (r *ReachMapRepositoryImpl) CreateBulk(ctx context.Context, rows []*entity.ReachMap) error {
	if len(rows) == 0 {
		return nil
	}
	models := make([]*model.ReachMap, len(rows))
	for i, row := range rows {
		models[i] = r.mapper.ToModel(row)
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

func (r *ReachMapRepositoryImpl) FindByCodePrefixes(ctx context.Context, prefixes []string) ([]*entity.ReachMap, error) {
	if len(prefixes) == 0 {
		return nil, nil
	}
	var models []*model.ReachMap
	err := r.db.WithContext(ctx).
		Where("goods_code_prefix IN ?", prefixes).
		Order("LENGTH(goods_code_prefix) DESC, entry_no ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReachMapRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReachMap, error) {
	var models []*model.ReachMap
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
