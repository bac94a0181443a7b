package model

import "time"

// ReachMap links a goods code prefix to a REACH annex entry and the
// restriction that applies to substances in that product family.
type ReachMap struct {
	Id              uint      `gorm:"primaryKey;autoIncrement"`
	GoodsCodePrefix string    `gorm:"type:varchar(10);not null;index:idx_reach_map_prefix"`
	EntryNo         string    `gorm:"type:varchar(16);not null"`
	LimitValue      *float64  `gorm:""`
	Unit            *string   `gorm:"type:varchar(16)"`
	TestMethod      *string   `gorm:"type:varchar(64)"`
	ConditionalRule *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (ReachMap) TableName() string {
	return "reach_map"
}
