package mapper

import (
	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/model"
)

type ReachMapMapper struct{}

func NewReachMapMapper() *ReachMapMapper {
	return &ReachMapMapper{}
}

func (m *ReachMapMapper) ToEntity(r *model.ReachMap) *entity.ReachMap {
	if r == nil {
		return nil
	}

	return &entity.ReachMap{
		Id:              r.Id,
		GoodsCodePrefix: r.GoodsCodePrefix,
		EntryNo:         r.EntryNo,
		LimitValue:      r.LimitValue,
		Unit:            r.Unit,
		TestMethod:      r.TestMethod,
		ConditionalRule: r.ConditionalRule,
	}
}

func (m *ReachMapMapper) ToModel(r *entity.ReachMap) *model.ReachMap {
	if r == nil {
		return nil
	}

	return &model.ReachMap{
		Id:              r.Id,
		GoodsCodePrefix: r.GoodsCodePrefix,
		EntryNo:         r.EntryNo,
		LimitValue:      r.LimitValue,
		Unit:            r.Unit,
		TestMethod:      r.TestMethod,
		ConditionalRule: r.ConditionalRule,
	}
}

func (m *ReachMapMapper) ToEntities(rows []*model.ReachMap) []*entity.ReachMap {
	entities := make([]*entity.ReachMap, len(rows))
	for i, r := range rows {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
