package model

import "time"

// GoodsNomenclature is one node of the HS code hierarchy. Level counts
// significant digit pairs: 2 = chapter, 4 = heading, 6 = subheading,
// 8/10 = national subdivisions.
type GoodsNomenclature struct {
	GoodsCode     string     `gorm:"type:varchar(10);primaryKey"`
	DescriptionEn string     `gorm:"type:text;not null"`
	Level         int        `gorm:"not null"`
	IsLeaf        bool       `gorm:"default:false"`
	ValidFrom     time.Time  `gorm:"not null"`
	ValidTo       *time.Time `gorm:""`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (GoodsNomenclature) TableName() string {
	return "goods_nomenclature"
}
