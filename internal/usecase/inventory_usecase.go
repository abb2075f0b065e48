package usecase

import (
	"context"

	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/ledger"
)

// InventoryUsecase defines the food bank stock use cases
type InventoryUsecase interface {
	// AddInventory increments the stock of a food item, creating the record on first add
	AddInventory(ctx context.Context, p entity.Principal, entry ledger.Entry) (*entity.InventoryRecord, error)

	// UpdateInventory replaces the quantity of an existing record
	UpdateInventory(ctx context.Context, p entity.Principal, entry ledger.Entry) (*entity.InventoryRecord, error)

	// ListInventory returns a food bank's stock
	ListInventory(ctx context.Context, p entity.Principal, foodBankID int64) ([]*entity.InventoryRecord, error)
}
