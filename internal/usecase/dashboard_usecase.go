package usecase

import (
	"context"

	"foodaid/internal/domain/entity"
)

// DashboardUsecase defines the organization dashboard use case
type DashboardUsecase interface {
	// DashboardStats recomputes request and inventory statistics
	DashboardStats(ctx context.Context, p entity.Principal) (*entity.DashboardStats, error)
}
