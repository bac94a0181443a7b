package contract

import (
	"context"
	"time"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/repository/specification"
)

type VatRateRepository interface {
	Upsert(ctx context.Context, rate *entity.VatRate) error
	// FindByCountry returns the VAT schedule of a destination country
	// valid on the given date, or nil when none is recorded.
	FindByCountry(ctx context.Context, countryCode string, asOf time.Time) (*entity.VatRate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VatRate, error)
}

type ExchangeRateRepository interface {
	Create(ctx context.Context, rate *entity.ExchangeRate) error
	CreateBulk(ctx context.Context, rates []*entity.ExchangeRate) error
	// FindLatestByIso returns the most recent rate per requested currency
	// dated on or before the given date.
	FindLatestByIso(ctx context.Context, isos []string, asOf time.Time) ([]*entity.ExchangeRate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExchangeRate, error)
}
