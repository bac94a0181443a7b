package model

import "time"

// VatRate is the VAT schedule of a destination country.
type VatRate struct {
	CountryCode  string     `gorm:"type:varchar(2);primaryKey"`
	StandardRate float64    `gorm:"not null"`
	ReducedRate1 *float64   `gorm:""`
	ValidFrom    time.Time  `gorm:"not null"`
	ValidTo      *time.Time `gorm:""`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (VatRate) TableName() string {
	return "vat_rates"
}

// ExchangeRate is one published currency conversion rate.
type ExchangeRate struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Iso       string    `gorm:"type:varchar(3);not null;index:idx_exchange_rates_iso"`
	Rate      float64   `gorm:"not null"`
	RateDate  time.Time `gorm:"not null"`
	Source    string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ExchangeRate) TableName() string {
	return "exchange_rates"
}
