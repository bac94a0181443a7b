package entity

import "time"

type VatRate struct {
	CountryCode  string
	StandardRate float64
	ReducedRate1 *float64
	ValidFrom    time.Time
	ValidTo      *time.Time
}

type ExchangeRate struct {
	Id       uint
	Iso      string
	Rate     float64
	RateDate time.Time
	Source   string
}
