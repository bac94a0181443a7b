package specification

import "gorm.io/gorm"

// ByGoodsCode filters by an exact goods code
type ByGoodsCode struct {
	GoodsCode string
}

func (s ByGoodsCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("goods_code = ?", s.GoodsCode)
}

// ByGoodsCodes filters by a list of goods codes
type ByGoodsCodes struct {
	GoodsCodes []string
}

func (s ByGoodsCodes) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("goods_code IN ?", s.GoodsCodes)
}

// ByCodePrefix filters goods codes by leading digits
type ByCodePrefix struct {
	Prefix string
}

func (s ByCodePrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("goods_code LIKE ?", s.Prefix+"%")
}

// ByLevel filters nomenclature nodes by hierarchy level
type ByLevel struct {
	Level int
}

func (s ByLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("level = ?", s.Level)
}

// LeavesOnly keeps declarable codes
type LeavesOnly struct{}

func (s LeavesOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_leaf = ?", true)
}
