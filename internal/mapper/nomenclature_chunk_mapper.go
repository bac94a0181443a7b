package mapper

import (
	"time"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type NomenclatureChunkMapper struct{}

func NewNomenclatureChunkMapper() *NomenclatureChunkMapper {
	return &NomenclatureChunkMapper{}
}

func (m *NomenclatureChunkMapper) ToEntity(c *model.NomenclatureChunk) *entity.NomenclatureChunk {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.NomenclatureChunk{
		Id:         c.Id,
		GoodsCode:  c.GoodsCode,
		Content:    c.Content,
		Embedding:  c.Embedding.Slice(),
		ChunkIndex: c.ChunkIndex,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *NomenclatureChunkMapper) ToModel(c *entity.NomenclatureChunk) *model.NomenclatureChunk {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.NomenclatureChunk{
		Id:         c.Id,
		GoodsCode:  c.GoodsCode,
		Content:    c.Content,
		Embedding:  pgvector.NewVector(c.Embedding),
		ChunkIndex: c.ChunkIndex,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *NomenclatureChunkMapper) ToEntities(chunks []*model.NomenclatureChunk) []*entity.NomenclatureChunk {
	entities := make([]*entity.NomenclatureChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *NomenclatureChunkMapper) ToModels(chunks []*entity.NomenclatureChunk) []*model.NomenclatureChunk {
	models := make([]*model.NomenclatureChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}
