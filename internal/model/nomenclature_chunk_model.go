package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// NomenclatureChunk is one indexed piece of HS nomenclature text with
// its embedding. The vector column drives cosine retrieval.
type NomenclatureChunk struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GoodsCode  string          `gorm:"type:varchar(10);not null;index"`
	Content    string          `gorm:"type:text;not null"`
	Embedding  pgvector.Vector `gorm:"type:vector(768)"` // bge-m3 dense output is projected to 768 dims
	ChunkIndex int             `gorm:"default:0"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}

func (NomenclatureChunk) TableName() string {
	return "nomenclature_chunks"
}
