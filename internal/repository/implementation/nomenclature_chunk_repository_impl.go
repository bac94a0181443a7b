package implementation

import (
	"context"

	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/mapper"
	"trade-compliance-be/internal/model"
	"trade-compliance-be/internal/repository/contract"
	"trade-compliance-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type NomenclatureChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NomenclatureChunkMapper
}

func NewNomenclatureChunkRepository(db *gorm.DB) contract.NomenclatureChunkRepository {
	return &NomenclatureChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewNomenclatureChunkMapper(),
	}
}

func (r *NomenclatureChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NomenclatureChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.NomenclatureChunk) error {
	m := r.mapper.ToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ToEntity(m)
	return nil
}

func (r *NomenclatureChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.NomenclatureChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := r.mapper.ToModels(chunks)
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

func (r *NomenclatureChunkRepositoryImpl) DeleteByGoodsCode(ctx context.Context, goodsCode string) error {
	return r.db.WithContext(ctx).Where("goods_code = ?", goodsCode).Delete(&model.NomenclatureChunk{}).Error
}

func (r *NomenclatureChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NomenclatureChunk, error) {
	var models []*model.NomenclatureChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NomenclatureChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.NomenclatureChunk{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore runs the cosine nearest-neighbour query. Cosine
// distance in pgvector is 1 - cosine_similarity, so similarity is
// computed inline. Ties on similarity break on goods code ascending so
// the same query always returns the same order.
func (r *NomenclatureChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredChunk, error) {
	if limit <= 0 {
		limit = 20
	}

	type result struct {
		model.NomenclatureChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("nomenclature_chunks").
		Select("nomenclature_chunks.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Order("similarity DESC, goods_code ASC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredChunk, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredChunk{
			Chunk:      r.mapper.ToEntity(&res.NomenclatureChunk),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
