package dto

type ComplianceRequest struct {
	GoodsCode          string `json:"goods_code" validate:"required,numeric,min=4,max=10"`
	Origin             string `json:"origin" validate:"required,len=2,alpha"`
	Destination        string `json:"destination" validate:"required,len=2,alpha"`
	AsOf               string `json:"as_of,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProductDescription string `json:"product_description,omitempty"`
}

type QueryParameters struct {
	GoodsCode          string `json:"goods_code"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	AsOf               string `json:"as_of"`
	ProductDescription string `json:"product_description,omitempty"`
}

type NomenclatureItem struct {
	GoodsCode         string  `json:"goods_code"`
	Description       string  `json:"description"`
	Level             int     `json:"level"`
	IsLeaf            bool    `json:"is_leaf"`
	ValidityStartDate string  `json:"validity_start_date"`
	ValidityEndDate   *string `json:"validity_end_date,omitempty"`
}

type DutyComponentItem struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Unit  *string `json:"unit,omitempty"`
}

type Applicability struct {
	ValidFrom string  `json:"valid_from"`
	ValidTo   *string `json:"valid_to,omitempty"`
}

type LegalBase struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}

type ImportMeasureItem struct {
	GoodsCode      string              `json:"goods_code"`
	OriginGroup    string              `json:"origin_group"`
	MeasureType    string              `json:"measure_type"`
	DutyComponents []DutyComponentItem `json:"duty_components"`
	Applicability  Applicability       `json:"applicability"`
	LegalBase      LegalBase           `json:"legal_base"`
	FootnoteCode   *string             `json:"footnote_code,omitempty"`
	CondCertCode   *string             `json:"cond_cert_code,omitempty"`
}

type ExportMeasureItem struct {
	GoodsCode        string              `json:"goods_code"`
	DestinationGroup string              `json:"destination_group"`
	MeasureType      string              `json:"measure_type"`
	DutyComponents   []DutyComponentItem `json:"duty_components"`
	Applicability    Applicability       `json:"applicability"`
	LegalBase        LegalBase           `json:"legal_base"`
	FootnoteCode     *string             `json:"footnote_code,omitempty"`
	CondCertCode     *string             `json:"cond_cert_code,omitempty"`
}

type VatRateItem struct {
	Country             string   `json:"country"`
	StandardRatePercent float64  `json:"standard_rate_percent"`
	ReducedRate1Percent *float64 `json:"reduced_rate_1_percent,omitempty"`
	ValidFrom           string   `json:"valid_from"`
	ValidTo             *string  `json:"valid_to,omitempty"`
}

type ExchangeRateItem struct {
	Iso      string  `json:"iso"`
	Rate     float64 `json:"rate"`
	RateDate string  `json:"rate_date"`
	Source   string  `json:"source"`
}

type MeasureConditionItem struct {
	CertificateCode string   `json:"certificate_code"`
	Action          string   `json:"action"`
	ThresholdValue  *float64 `json:"threshold_value,omitempty"`
	ThresholdUnit   *string  `json:"threshold_unit,omitempty"`
	Box44Codes      []string `json:"box44_codes,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

type ReachEntryItem struct {
	GoodsCodePrefix string   `json:"goods_code_prefix"`
	EntryNo         string   `json:"entry_no"`
	LimitValue      *float64 `json:"limit_value,omitempty"`
	Unit            *string  `json:"unit,omitempty"`
	TestMethod      *string  `json:"test_method,omitempty"`
	ConditionalRule *string  `json:"conditional_rule,omitempty"`
}

type ApplicableRateResolution struct {
	PreferencePossible       bool     `json:"preference_possible"`
	RequiredProof            *string  `json:"required_proof,omitempty"`
	ChosenMeasureOrigin      string   `json:"chosen_measure_origin"`
	ChosenDutyRatePercent    *float64 `json:"chosen_duty_rate_percent,omitempty"`
	FallbackIfNoProofPercent *float64 `json:"fallback_if_no_proof_percent,omitempty"`
}

type Completeness struct {
	AllMeasuresHaveLegalBase bool `json:"all_measures_have_legal_base"`
	AllRequiredVatPresent    bool `json:"all_required_vat_present"`
	HasReachMapping          bool `json:"has_reach_mapping"`
}

type Unknown struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Provenance struct {
	LegalBases []LegalBase `json:"legal_bases"`
}

// DeterministicValues holds everything in the record that came straight
// from canonical database rows.
type DeterministicValues struct {
	GoodsNomenclatureEn      []NomenclatureItem        `json:"goods_nomenclature_en"`
	ImportMeasures           []ImportMeasureItem       `json:"import_measures"`
	ExportMeasures           []ExportMeasureItem       `json:"export_measures"`
	VatRates                 []VatRateItem             `json:"vat_rates"`
	ExchangeRates            []ExchangeRateItem        `json:"exchange_rates"`
	MeasureConditions        []MeasureConditionItem    `json:"measure_conditions"`
	ReachEntries             []ReachEntryItem          `json:"reach_entries"`
	ApplicableRateResolution *ApplicableRateResolution `json:"applicable_rate_resolution,omitempty"`
	Completeness             Completeness              `json:"completeness"`
	Unknowns                 []Unknown                 `json:"unknowns"`
	Provenance               Provenance                `json:"provenance"`
}

type ComplianceRecord struct {
	QueryParameters     QueryParameters     `json:"query_parameters"`
	DeterministicValues DeterministicValues `json:"deterministic_values"`
	Explanation         string              `json:"explanation,omitempty"`
}
