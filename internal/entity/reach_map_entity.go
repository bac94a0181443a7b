package entity

type ReachMap struct {
	Id              uint
	GoodsCodePrefix string
	EntryNo         string
	LimitValue      *float64
	Unit            *string
	TestMethod      *string
	ConditionalRule *string
}
