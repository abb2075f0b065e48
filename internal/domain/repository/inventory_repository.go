package repository

import (
	"context"

	"foodaid/internal/domain/entity"
)

// InventoryRepository persists inventory records.
// Uniqueness of the (food bank, food item) pair is kept by the ledger, not by storage.
type InventoryRepository interface {
	// FindByPair retrieves the record of a food item held by a food bank.
	FindByPair(ctx context.Context, foodBankID, foodItemID int64) (*entity.InventoryRecord, error)

	// Create persists a new record and assigns its ID.
	Create(ctx context.Context, record *entity.InventoryRecord) error

	// Increment adds delta to the stored quantity atomically, persists record.UpdatedAt
	// and refreshes record.Quantity with the stored value.
	Increment(ctx context.Context, record *entity.InventoryRecord, delta int) error

	// SetQuantity replaces the stored quantity and persists record.UpdatedAt.
	SetQuantity(ctx context.Context, record *entity.InventoryRecord, quantity int) error

	// ListByFoodBank returns the records of one food bank ordered by food item ID.
	ListByFoodBank(ctx context.Context, foodBankID int64) ([]*entity.InventoryRecord, error)

	// ListAll returns every record.
	ListAll(ctx context.Context) ([]*entity.InventoryRecord, error)
}
