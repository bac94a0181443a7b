package entity

type MeasureCondition struct {
	Id              uint
	GoodsCode       string
	CertificateCode string
	Action          string
	ThresholdValue  *float64
	ThresholdUnit   *string
	Box44Codes      []string
	Notes           *string
}
