package mapper

import (
	"encoding/json"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/model"
)

type MeasureConditionMapper struct{}

func NewMeasureConditionMapper() *MeasureConditionMapper {
	return &MeasureConditionMapper{}
}

func (m *MeasureConditionMapper) ToEntity(c *model.MeasureCondition) *entity.MeasureCondition {
	if c == nil {
		return nil
	}

	var box44 []string
	if len(c.Box44Codes) > 0 {
		_ = json.Unmarshal(c.Box44Codes, &box44)
	}

	return &entity.MeasureCondition{
		Id:              c.Id,
		GoodsCode:       c.GoodsCode,
		CertificateCode: c.CertificateCode,
		Action:          c.Action,
		ThresholdValue:  c.ThresholdValue,
		ThresholdUnit:   c.ThresholdUnit,
		Box44Codes:      box44,
		Notes:           c.Notes,
	}
}

func (m *MeasureConditionMapper) ToModel(c *entity.MeasureCondition) *model.MeasureCondition {
	if c == nil {
		return nil
	}

	out := &model.MeasureCondition{
		Id:              c.Id,
		GoodsCode:       c.GoodsCode,
		CertificateCode: c.CertificateCode,
		Action:          c.Action,
		ThresholdValue:  c.ThresholdValue,
		ThresholdUnit:   c.ThresholdUnit,
		Notes:           c.Notes,
	}
	if len(c.Box44Codes) > 0 {
		if raw, err := json.Marshal(c.Box44Codes); err == nil {
			out.Box44Codes = raw
		}
	}
	return out
}

func (m *MeasureConditionMapper) ToEntities(conditions []*model.MeasureCondition) []*entity.MeasureCondition {
	entities := make([]*entity.MeasureCondition, len(conditions))
	for i, c := range conditions {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
