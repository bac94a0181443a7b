package mapper

import (
	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/model"
)

type RatesMapper struct{}

func NewRatesMapper() *RatesMapper {
	return &RatesMapper{}
}

func (m *RatesMapper) VatToEntity(v *model.VatRate) *entity.VatRate {
	if v == nil {
		return nil
	}

	return &entity.VatRate{
		CountryCode:  v.CountryCode,
		StandardRate: v.StandardRate,
		ReducedRate1: v.ReducedRate1,
		ValidFrom:    v.ValidFrom,
		ValidTo:      v.ValidTo,
	}
}

func (m *RatesMapper) VatToModel(v *entity.VatRate) *model.VatRate {
	if v == nil {
		return nil
	}

	return &model.VatRate{
		CountryCode:  v.CountryCode,
		StandardRate: v.StandardRate,
		ReducedRate1: v.ReducedRate1,
		ValidFrom:    v.ValidFrom,
		ValidTo:      v.ValidTo,
	}
}

func (m *RatesMapper) ExchangeToEntity(e *model.ExchangeRate) *entity.ExchangeRate {
	if e == nil {
		return nil
	}

	return &entity.ExchangeRate{
		Id:       e.Id,
		Iso:      e.Iso,
		Rate:     e.Rate,
		RateDate: e.RateDate,
		Source:   e.Source,
	}
}

func (m *RatesMapper) ExchangeToModel(e *entity.ExchangeRate) *model.ExchangeRate {
	if e == nil {
		return nil
	}

	return &model.ExchangeRate{
		Id:       e.Id,
		Iso:      e.Iso,
		Rate:     e.Rate,
		RateDate: e.RateDate,
		Source:   e.Source,
	}
}

func (m *RatesMapper) ExchangesToEntities(rates []*model.ExchangeRate) []*entity.ExchangeRate {
	entities := make([]*entity.ExchangeRate, len(rates))
	for i, e := range rates {
		entities[i] = m.ExchangeToEntity(e)
	}
	return entities
}
