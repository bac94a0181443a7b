package model

import (
	"time"

	"gorm.io/datatypes"
)

// MeasureCondition is a certificate or threshold requirement attached to
// measures of a goods code, e.g. a CITES permit or a price floor.
type MeasureCondition struct {
	Id             uint           `gorm:"primaryKey;autoIncrement"`
	GoodsCode      string         `gorm:"type:varchar(10);not null;index:idx_measure_conditions_goods_code"`
	CertificateCode string        `gorm:"type:varchar(16);not null"`
	Action         string         `gorm:"type:varchar(64);not null"`
	ThresholdValue *float64       `gorm:""`
	ThresholdUnit  *string        `gorm:"type:varchar(16)"`
	Box44Codes     datatypes.JSON `gorm:"type:jsonb"`
	Notes          *string        `gorm:"type:text"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (MeasureCondition) TableName() string {
	return "measure_conditions"
}
