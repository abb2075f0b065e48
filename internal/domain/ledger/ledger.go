// Package ledger keeps per-food-bank, per-food-item stock.
//
// Add merges into the existing record of a (food bank, food item) pair while
// Set replaces the quantity of an existing record. The asymmetry is part of
// the contract: repeated Adds accumulate, a Set never creates.
package ledger

import (
	"context"
	"time"

	"foodaid/internal/domain/authz"
	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/errors"
)

// Clock returns the current time.
type Clock func() time.Time

// Ledger implements the inventory operations over a unit of work.
type Ledger struct {
	now Clock
}

// New returns a ledger using clock for record timestamps.
func New(clock Clock) *Ledger {
	if clock == nil {
		clock = time.Now
	}

	return &Ledger{now: clock}
}

// Entry identifies a ledger movement.
type Entry struct {
	FoodBankID int64
	FoodItemID int64
	Quantity   int
}

// Add increments the record of the pair by Quantity, creating it when absent.
func (l *Ledger) Add(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, in Entry) (*entity.InventoryRecord, error) {
	if in.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must be a positive integer")
	}

	foodBank, err := uow.FoodBanks().FindByID(ctx, in.FoodBankID)
	if err != nil {
		return nil, err
	}
	if _, err := uow.FoodItems().FindByID(ctx, in.FoodItemID); err != nil {
		return nil, err
	}
	if err := authz.Authorize(p, authz.ModifyInventory, authz.Target{FoodBank: foodBank}); err != nil {
		return nil, err
	}

	record, err := uow.Inventory().FindByPair(ctx, in.FoodBankID, in.FoodItemID)
	switch {
	case err == nil:
		record.UpdatedAt = l.now()
		if err := uow.Inventory().Increment(ctx, record, in.Quantity); err != nil {
			return nil, errors.Wrap(err, "increment inventory record")
		}

		return record, nil
	case errors.Is(err, domainerrors.ErrInventoryRecordNotFound):
		record = &entity.InventoryRecord{
			FoodBankID: in.FoodBankID,
			FoodItemID: in.FoodItemID,
			Quantity:   in.Quantity,
			UpdatedAt:  l.now(),
		}
		if err := uow.Inventory().Create(ctx, record); err != nil {
			return nil, errors.Wrap(err, "create inventory record")
		}

		return record, nil
	default:
		return nil, errors.Wrap(err, "find inventory record")
	}
}

// Set replaces the quantity of the existing record of the pair.
func (l *Ledger) Set(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, in Entry) (*entity.InventoryRecord, error) {
	if in.Quantity < 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must not be negative")
	}

	foodBank, err := uow.FoodBanks().FindByID(ctx, in.FoodBankID)
	if err != nil {
		return nil, err
	}
	record, err := uow.Inventory().FindByPair(ctx, in.FoodBankID, in.FoodItemID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(p, authz.ModifyInventory, authz.Target{FoodBank: foodBank}); err != nil {
		return nil, err
	}

	record.UpdatedAt = l.now()
	if err := uow.Inventory().SetQuantity(ctx, record, in.Quantity); err != nil {
		return nil, errors.Wrap(err, "set inventory quantity")
	}

	return record, nil
}

// List returns the stock of one food bank.
func (l *Ledger) List(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, foodBankID int64) ([]*entity.InventoryRecord, error) {
	foodBank, err := uow.FoodBanks().FindByID(ctx, foodBankID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(p, authz.ReadInventory, authz.Target{FoodBank: foodBank}); err != nil {
		return nil, err
	}

	records, err := uow.Inventory().ListByFoodBank(ctx, foodBankID)
	if err != nil {
		return nil, errors.Wrap(err, "list inventory")
	}

	return records, nil
}
