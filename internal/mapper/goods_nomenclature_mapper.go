package mapper

import (
	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/model"
)

type GoodsNomenclatureMapper struct{}

func NewGoodsNomenclatureMapper() *GoodsNomenclatureMapper {
	return &GoodsNomenclatureMapper{}
}

func (m *GoodsNomenclatureMapper) ToEntity(n *model.GoodsNomenclature) *entity.GoodsNomenclature {
	if n == nil {
		return nil
	}

	return &entity.GoodsNomenclature{
		GoodsCode:     n.GoodsCode,
		DescriptionEn: n.DescriptionEn,
		Level:         n.Level,
		IsLeaf:        n.IsLeaf,
		ValidFrom:     n.ValidFrom,
		ValidTo:       n.ValidTo,
	}
}

func (m *GoodsNomenclatureMapper) ToModel(n *entity.GoodsNomenclature) *model.GoodsNomenclature {
	if n == nil {
		return nil
	}

	return &model.GoodsNomenclature{
		GoodsCode:     n.GoodsCode,
		DescriptionEn: n.DescriptionEn,
		Level:         n.Level,
		IsLeaf:        n.IsLeaf,
		ValidFrom:     n.ValidFrom,
		ValidTo:       n.ValidTo,
	}
}

func (m *GoodsNomenclatureMapper) ToEntities(nodes []*model.GoodsNomenclature) []*entity.GoodsNomenclature {
	entities := make([]*entity.GoodsNomenclature, len(nodes))
	for i, n := range nodes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *GoodsNomenclatureMapper) ToModels(nodes []*entity.GoodsNomenclature) []*model.GoodsNomenclature {
	models := make([]*model.GoodsNomenclature, len(nodes))
	for i, n := range nodes {
		models[i] = m.ToModel(n)
	}
	return models
}
