package implementation

import (
	"context"
	"errors"
	"time"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/mapper"
	"trade-compliance-be/internal/model"
	"trade-compliance-be/internal/repository/contract"
	"trade-compliance-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VatRateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RatesMapper
}

func NewVatRateRepository(db *gorm.DB) contract.VatRateRepository {
	return &VatRateRepositoryImpl{
		db:     db,
		mapper: mapper.NewRatesMapper(),
	}
}

func (r *VatRateRepositoryImpl) Upsert(ctx context.Context, rate *entity.VatRate) error {
	m := r.mapper.VatToModel(rate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "country_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"standard_rate", "reduced_rate_1", "valid_from", "valid_to", "updated_at"}),
	}).Create(m).Error
}

func (r *VatRateRepositoryImpl) FindByCountry(ctx context.Context, countryCode string, asOf time.Time) (*entity.VatRate, error) {
	var m model.VatRate
	query := r.db.WithContext(ctx).Where("country_code = ?", countryCode)
	err := specification.ValidOn{Date: asOf}.Apply(query).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.VatToEntity(&m), nil
}

func (r *VatRateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VatRate, error) {
	var models []*model.VatRate
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.VatRate, len(models))
	for i, m := range models {
		entities[i] = r.mapper.VatToEntity(m)
	}
	return entities, nil
}

type ExchangeRateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RatesMapper
}

func NewExchangeRateRepository(db *gorm.DB) contract.ExchangeRateRepository {
	return &ExchangeRateRepositoryImpl{
		db:     db,
		mapper: mapper.NewRatesMapper(),
	}
}

func (r *ExchangeRateRepositoryImpl) Create(ctx context.Context, rate *entity.ExchangeRate) error {
	m := r.mapper.ExchangeToModel(rate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	rate.Id = m.Id
	return nil
}

func (r *ExchangeRateRepositoryImpl) CreateBulk(ctx context.Context, rates []*entity.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}
	models := make([]*model.ExchangeRate, len(rates))
	for i, e := range rates {
		models[i] = r.mapper.ExchangeToModel(e)
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

// FindLatestByIso picks the newest rate per currency, no later than
// asOf, with a window function so one round trip covers the whole
// batch.
func (r *ExchangeRateRepositoryImpl) FindLatestByIso(ctx context.Context, isos []string, asOf time.Time) ([]*entity.ExchangeRate, error) {
	if len(isos) == 0 {
		return nil, nil
	}
	var models []*model.ExchangeRate
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, iso, rate, rate_date, source, created_at FROM (
			SELECT *, ROW_NUMBER() OVER (PARTITION BY iso ORDER BY rate_date DESC, id DESC) AS rn
			FROM exchange_rates
			WHERE iso IN ? AND rate_date <= ?
		) ranked
		WHERE rn = 1
		ORDER BY iso ASC`, isos, asOf).Scan(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ExchangesToEntities(models), nil
}

func (r *ExchangeRateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExchangeRate, error) {
	var models []*model.ExchangeRate
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ExchangesToEntities(models), nil
}
