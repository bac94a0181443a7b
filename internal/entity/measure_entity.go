package entity

import "time"

// DutyComponent is one term of a duty expression, e.g. a 12% ad valorem
// part plus a specific EUR-per-kg part.
type DutyComponent struct {
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	Unit     *string `json:"unit,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

type ImportMeasure struct {
	Id             uint
	GoodsCode      string
	OriginGroup    string
	MeasureType    string
	DutyComponents []DutyComponent
	LegalBaseId    string
	LegalBaseTitle string
	FootnoteCode   *string
	CondCertCode   *string
	ValidFrom      time.Time
	ValidTo        *time.Time
}

type ExportMeasure struct {
	Id               uint
	GoodsCode        string
	DestinationGroup string
	MeasureType      string
	DutyComponents   []DutyComponent
	LegalBaseId      string
	LegalBaseTitle   string
	FootnoteCode     *string
	CondCertCode     *string
	ValidFrom        time.Time
	ValidTo          *time.Time
}
