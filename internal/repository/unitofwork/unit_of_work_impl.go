package unitofwork

import (
	"context"
	"fmt"

	"trade-compliance-be/internal/repository/contract"
	"trade-compliance-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) NomenclatureChunkRepository() contract.NomenclatureChunkRepository {
	return implementation.NewNomenclatureChunkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GoodsNomenclatureRepository() contract.GoodsNomenclatureRepository {
	return implementation.NewGoodsNomenclatureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ImportMeasureRepository() contract.ImportMeasureRepository {
	return implementation.NewImportMeasureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExportMeasureRepository() contract.ExportMeasureRepository {
	return implementation.NewExportMeasureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MeasureConditionRepository() contract.MeasureConditionRepository {
	return implementation.NewMeasureConditionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VatRateRepository() contract.VatRateRepository {
	return implementation.NewVatRateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExchangeRateRepository() contract.ExchangeRateRepository {
	return implementation.NewExchangeRateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReachMapRepository() contract.ReachMapRepository {
	return implementation.NewReachMapRepository(u.getDB())
}
