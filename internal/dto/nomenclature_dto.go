package dto

import "time"

type UpsertNomenclatureRequest struct {
	GoodsCode     string     `json:"goods_code" validate:"required,numeric,min=2,max=10"`
	DescriptionEn string     `json:"description_en" validate:"required"`
	Level         int        `json:"level" validate:"required,min=2"`
	IsLeaf        bool       `json:"is_leaf"`
	ValidFrom     time.Time  `json:"valid_from" validate:"required"`
	ValidTo       *time.Time `json:"valid_to,omitempty"`
}

// PublishEmbedNomenclatureMessage triggers reindexing of one code's
// chunks on the internal bus.
type PublishEmbedNomenclatureMessage struct {
	GoodsCode string `json:"goods_code"`
}

type ExtractSlotsRequest struct {
	Question string `json:"question" validate:"required"`
}

// ExtractedSlots is the LLM's reading of a free-text trade question.
// Hints only: nothing here is treated as a legal or numeric fact.
type ExtractedSlots struct {
	ProductDescription string `json:"product_description"`
	Origin             string `json:"origin,omitempty"`
	Destination        string `json:"destination,omitempty"`
	HSPrefix           string `json:"hs_prefix,omitempty"`
}
