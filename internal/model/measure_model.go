package model

import (
	"time"

	"gorm.io/datatypes"
)

// ImportMeasure is a tariff or non-tariff measure applying to imports of
// a goods code from an origin group. OriginGroup "ERGA OMNES" is the
// universal fallback; any other value is a preferential group.
type ImportMeasure struct {
	Id             uint           `gorm:"primaryKey;autoIncrement"`
	GoodsCode      string         `gorm:"type:varchar(10);not null;index:idx_import_measures_goods_code"`
	OriginGroup    string         `gorm:"type:varchar(64);not null"`
	MeasureType    string         `gorm:"type:varchar(64);not null"`
	DutyComponents datatypes.JSON `gorm:"type:jsonb"`
	LegalBaseId    string         `gorm:"type:varchar(64)"`
	LegalBaseTitle string         `gorm:"type:text"`
	FootnoteCode   *string        `gorm:"type:varchar(16)"`
	CondCertCode   *string        `gorm:"type:varchar(16)"`
	ValidFrom      time.Time      `gorm:"not null"`
	ValidTo        *time.Time     `gorm:""`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (ImportMeasure) TableName() string {
	return "measures_import"
}

// ExportMeasure mirrors ImportMeasure for the export direction, keyed on
// a destination group instead of an origin group.
type ExportMeasure struct {
	Id               uint           `gorm:"primaryKey;autoIncrement"`
	GoodsCode        string         `gorm:"type:varchar(10);not null;index:idx_export_measures_goods_code"`
	DestinationGroup string         `gorm:"type:varchar(64);not null"`
	MeasureType      string         `gorm:"type:varchar(64);not null"`
	DutyComponents   datatypes.JSON `gorm:"type:jsonb"`
	LegalBaseId      string         `gorm:"type:varchar(64)"`
	LegalBaseTitle   string         `gorm:"type:text"`
	FootnoteCode     *string        `gorm:"type:varchar(16)"`
	CondCertCode     *string        `gorm:"type:varchar(16)"`
	ValidFrom        time.Time      `gorm:"not null"`
	ValidTo          *time.Time     `gorm:""`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (ExportMeasure) TableName() string {
	return "measures_export"
}
