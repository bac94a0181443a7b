package entity

import "time"

type GoodsNomenclature struct {
	GoodsCode     string
	DescriptionEn string
	Level         int
	IsLeaf        bool
	ValidFrom     time.Time
	ValidTo       *time.Time
}
