package entity

import (
	"time"

	"github.com/google/uuid"
)

type NomenclatureChunk struct {
	Id         uuid.UUID
	GoodsCode  string
	Content    string
	Embedding  []float32
	ChunkIndex int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
