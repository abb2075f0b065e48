package main

import (
	"context"
	"log/slog"
	"os"

	"foodaid/config"
	"foodaid/internal/delivery"
	"foodaid/internal/delivery/api"
	apimiddleware "foodaid/internal/delivery/api/middleware"
	"foodaid/internal/delivery/api/router/handler"
	"foodaid/internal/domain/repository"
	"foodaid/internal/domain/service"
	"foodaid/internal/infra/auth"
	logs "foodaid/internal/infra/log"
	"foodaid/internal/infra/persistence/memory"
	"foodaid/internal/infra/persistence/postgres"
	"foodaid/internal/infra/qrcode"
	"foodaid/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type storageResult struct {
	fx.Out

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
}

// newStorage opens the persistence driver named by storage.driver.
func newStorage(params storageParams) (storageResult, error) {
	if params.Config.Storage.Driver == config.StorageDriverMemory {
		params.Logger.Warn("Using in-memory storage; state is lost on restart")
		store := memory.NewStore()

		return storageResult{TxManager: store.TransactionManager(), Repos: store.Repositories()}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return storageResult{}, err
	}

	return storageResult{
		TxManager: postgres.NewTransactionManager(db),
		Repos:     postgres.NewRepositoryFactory(db),
	}, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStorage,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewActorService,
			impl.NewRequestService,
			impl.NewInventoryService,
			impl.NewCatalogService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewRequestHandler,
			handler.NewPublicHandler,
			handler.NewFoodBankHandler,
			handler.NewCatalogHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
