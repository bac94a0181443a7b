package specification

import "gorm.io/gorm"

// ErgaOmnes is the universal origin/destination group that applies to
// every trading partner.
const ErgaOmnes = "ERGA OMNES"

// ByOriginGroups keeps import measures addressed to ERGA OMNES or any of
// the given preferential groups.
type ByOriginGroups struct {
	Groups []string
}

func (s ByOriginGroups) Apply(db *gorm.DB) *gorm.DB {
	groups := append([]string{ErgaOmnes}, s.Groups...)
	return db.Where("origin_group IN ?", groups)
}

// ByDestinationGroups keeps export measures addressed to ERGA OMNES or
// any of the given destination groups.
type ByDestinationGroups struct {
	Groups []string
}

func (s ByDestinationGroups) Apply(db *gorm.DB) *gorm.DB {
	groups := append([]string{ErgaOmnes}, s.Groups...)
	return db.Where("destination_group IN ?", groups)
}

// ByMeasureType filters by measure type
type ByMeasureType struct {
	MeasureType string
}

func (s ByMeasureType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("measure_type = ?", s.MeasureType)
}
