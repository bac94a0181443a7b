package mapper

import (
	"encoding/json"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/model"

	"gorm.io/datatypes"
)

type MeasureMapper struct{}

func NewMeasureMapper() *MeasureMapper {
	return &MeasureMapper{}
}

func dutyComponentsToEntity(raw datatypes.JSON) []entity.DutyComponent {
	if len(raw) == 0 {
		return nil
	}
	var components []entity.DutyComponent
	if err := json.Unmarshal(raw, &components); err != nil {
		return nil
	}
	return components
}

func dutyComponentsToJSON(components []entity.DutyComponent) datatypes.JSON {
	if len(components) == 0 {
		return nil
	}
	raw, err := json.Marshal(components)
	if err != nil {
		return nil
	}
	return raw
}

func (m *MeasureMapper) ImportToEntity(im *model.ImportMeasure) *entity.ImportMeasure {
	if im == nil {
		return nil
	}

	return &entity.ImportMeasure{
		Id:             im.Id,
		GoodsCode:      im.GoodsCode,
		OriginGroup:    im.OriginGroup,
		MeasureType:    im.MeasureType,
		DutyComponents: dutyComponentsToEntity(im.DutyComponents),
		LegalBaseId:    im.LegalBaseId,
		LegalBaseTitle: im.LegalBaseTitle,
		FootnoteCode:   im.FootnoteCode,
		CondCertCode:   im.CondCertCode,
		ValidFrom:      im.ValidFrom,
		ValidTo:        im.ValidTo,
	}
}

func (m *MeasureMapper) ImportToModel(im *entity.ImportMeasure) *model.ImportMeasure {
	if im == nil {
		return nil
	}

	return &model.ImportMeasure{
		Id:             im.Id,
		GoodsCode:      im.GoodsCode,
		OriginGroup:    im.OriginGroup,
		MeasureType:    im.MeasureType,
		DutyComponents: dutyComponentsToJSON(im.DutyComponents),
		LegalBaseId:    im.LegalBaseId,
		LegalBaseTitle: im.LegalBaseTitle,
		FootnoteCode:   im.FootnoteCode,
		CondCertCode:   im.CondCertCode,
		ValidFrom:      im.ValidFrom,
		ValidTo:        im.ValidTo,
	}
}

func (m *MeasureMapper) ExportToEntity(em *model.ExportMeasure) *entity.ExportMeasure {
	if em == nil {
		return nil
	}

	return &entity.ExportMeasure{
		Id:               em.Id,
		GoodsCode:        em.GoodsCode,
		DestinationGroup: em.DestinationGroup,
		MeasureType:      em.MeasureType,
		DutyComponents:   dutyComponentsToEntity(em.DutyComponents),
		LegalBaseId:      em.LegalBaseId,
		LegalBaseTitle:   em.LegalBaseTitle,
		FootnoteCode:     em.FootnoteCode,
		CondCertCode:     em.CondCertCode,
		ValidFrom:        em.ValidFrom,
		ValidTo:          em.ValidTo,
	}
}

func (m *MeasureMapper) ExportToModel(em *entity.ExportMeasure) *model.ExportMeasure {
	if em == nil {
		return nil
	}

	return &model.ExportMeasure{
		Id:               em.Id,
		GoodsCode:        em.GoodsCode,
		DestinationGroup: em.DestinationGroup,
		MeasureType:      em.MeasureType,
		DutyComponents:   dutyComponentsToJSON(em.DutyComponents),
		LegalBaseId:      em.LegalBaseId,
		LegalBaseTitle:   em.LegalBaseTitle,
		FootnoteCode:     em.FootnoteCode,
		CondCertCode:     em.CondCertCode,
		ValidFrom:        em.ValidFrom,
		ValidTo:          em.ValidTo,
	}
}

func (m *MeasureMapper) ImportsToEntities(measures []*model.ImportMeasure) []*entity.ImportMeasure {
	entities := make([]*entity.ImportMeasure, len(measures))
	for i, im := range measures {
		entities[i] = m.ImportToEntity(im)
	}
	return entities
}

func (m *MeasureMapper) ExportsToEntities(measures []*model.ExportMeasure) []*entity.ExportMeasure {
	entities := make([]*entity.ExportMeasure, len(measures))
	for i, em := range measures {
		entities[i] = m.ExportToEntity(em)
	}
	return entities
}
