package usecase

import (
	"context"

	"foodaid/internal/domain/catalog"
	"foodaid/internal/domain/entity"
)

// CatalogUsecase defines the use cases over food banks, food items and districts
type CatalogUsecase interface {
	CreateFoodBank(ctx context.Context, p entity.Principal, input catalog.FoodBankInput) (*entity.FoodBank, error)

	// ListFoodBanks lists food banks, optionally restricted to one district
	ListFoodBanks(ctx context.Context, district string) ([]*entity.FoodBank, error)

	// GetFoodBank returns a food bank. Its inventory is attached only when the
	// principal may read it.
	GetFoodBank(ctx context.Context, p entity.Principal, id int64) (*entity.FoodBankWithInventory, error)

	CreateFoodItem(ctx context.Context, p entity.Principal, input entity.FoodItem) (*entity.FoodItem, error)

	ListFoodItems(ctx context.Context) ([]*entity.FoodItem, error)

	CreateDistrict(ctx context.Context, p entity.Principal, input entity.District) (*entity.District, error)

	ListDistricts(ctx context.Context) ([]*entity.District, error)

	GetDistrict(ctx context.Context, id int64) (*entity.District, error)
}
