package impl

import (
	"context"
	"log/slog"

	"foodaid/internal/domain/dashboard"
	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/repository"
	"foodaid/internal/usecase"

	"go.uber.org/fx"
)

type dashboardService struct {
	uow *unitOfWork
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		uow: newUnitOfWork(params.TxManager, params.Repos, params.Logger),
	}
}

// DashboardStats reads every table once; the figures are never cached.
func (srv *dashboardService) DashboardStats(ctx context.Context, p entity.Principal) (*entity.DashboardStats, error) {
	var stats *entity.DashboardStats
	err := srv.uow.read(ctx, "dashboard stats", func(uow repository.RepositoryFactory) error {
		var err error
		stats, err = dashboard.Compute(ctx, uow, p)

		return err
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
