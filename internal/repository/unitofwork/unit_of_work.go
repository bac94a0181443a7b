package unitofwork

import (
	"context"

	"trade-compliance-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NomenclatureChunkRepository() contract.NomenclatureChunkRepository
	GoodsNomenclatureRepository() contract.GoodsNomenclatureRepository
	ImportMeasureRepository() contract.ImportMeasureRepository
	ExportMeasureRepository() contract.ExportMeasureRepository
	MeasureConditionRepository() contract.MeasureConditionRepository
	VatRateRepository() contract.VatRateRepository
	ExchangeRateRepository() contract.ExchangeRateRepository
	ReachMapRepository() contract.ReachMapRepository
}
