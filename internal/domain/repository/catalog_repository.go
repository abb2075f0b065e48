package repository

import (
	"context"

	"foodaid/internal/domain/entity"
)

// FoodItemRepository persists the food item catalog.
type FoodItemRepository interface {
	Create(ctx context.Context, item *entity.FoodItem) error
	FindByID(ctx context.Context, id int64) (*entity.FoodItem, error)
	FindByName(ctx context.Context, name string) (*entity.FoodItem, error)
	// List returns every food item ordered by ID.
	List(ctx context.Context) ([]*entity.FoodItem, error)
}

// DistrictRepository persists districts.
type DistrictRepository interface {
	Create(ctx context.Context, district *entity.District) error
	FindByID(ctx context.Context, id int64) (*entity.District, error)
	FindByName(ctx context.Context, name string) (*entity.District, error)
	// List returns every district ordered by ID.
	List(ctx context.Context) ([]*entity.District, error)
}
