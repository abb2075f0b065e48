package impl

import (
	"context"
	"log/slog"

	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/ledger"
	"foodaid/internal/domain/repository"
	"foodaid/internal/usecase"

	"go.uber.org/fx"
)

type inventoryService struct {
	uow    *unitOfWork
	ledger *ledger.Ledger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Logger    *slog.Logger
	Clock     usecase.Clock `optional:"true"`
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		uow:    newUnitOfWork(params.TxManager, params.Repos, params.Logger),
		ledger: ledger.New(ledger.Clock(params.Clock)),
	}
}

func (srv *inventoryService) AddInventory(ctx context.Context, p entity.Principal, entry ledger.Entry) (*entity.InventoryRecord, error) {
	var record *entity.InventoryRecord
	err := srv.uow.write(ctx, "add inventory", func(uow repository.RepositoryFactory) error {
		var err error
		record, err = srv.ledger.Add(ctx, uow, p, entry)

		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (srv *inventoryService) UpdateInventory(ctx context.Context, p entity.Principal, entry ledger.Entry) (*entity.InventoryRecord, error) {
	var record *entity.InventoryRecord
	err := srv.uow.write(ctx, "update inventory", func(uow repository.RepositoryFactory) error {
		var err error
		record, err = srv.ledger.Set(ctx, uow, p, entry)

		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (srv *inventoryService) ListInventory(ctx context.Context, p entity.Principal, foodBankID int64) ([]*entity.InventoryRecord, error) {
	var records []*entity.InventoryRecord
	err := srv.uow.read(ctx, "list inventory", func(uow repository.RepositoryFactory) error {
		var err error
		records, err = srv.ledger.List(ctx, uow, p, foodBankID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
