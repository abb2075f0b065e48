package repository

import (
	"context"

	"foodaid/internal/domain/entity"
)

// FoodBankRepository persists food banks.
type FoodBankRepository interface {
	// Create persists a new food bank and assigns its ID.
	Create(ctx context.Context, foodBank *entity.FoodBank) error

	// FindByID retrieves a food bank by ID.
	FindByID(ctx context.Context, id int64) (*entity.FoodBank, error)

	// FindByOperatorID is the reverse index from operator actor to food bank.
	FindByOperatorID(ctx context.Context, operatorID int64) (*entity.FoodBank, error)

	// List returns food banks ordered by ID, optionally restricted to a district.
	List(ctx context.Context, district string) ([]*entity.FoodBank, error)
}
