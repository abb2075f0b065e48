package impl

import (
	"context"
	"log/slog"

	"foodaid/internal/domain/authz"
	"foodaid/internal/domain/catalog"
	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/repository"
	"foodaid/internal/errors"
	"foodaid/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	uow     *unitOfWork
	catalog *catalog.Catalog
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Logger    *slog.Logger
	Clock     usecase.Clock `optional:"true"`
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		uow:     newUnitOfWork(params.TxManager, params.Repos, params.Logger),
		catalog: catalog.New(catalog.Clock(params.Clock)),
	}
}

func (srv *catalogService) CreateFoodBank(ctx context.Context, p entity.Principal, input catalog.FoodBankInput) (*entity.FoodBank, error) {
	var foodBank *entity.FoodBank
	err := srv.uow.write(ctx, "create food bank", func(uow repository.RepositoryFactory) error {
		var err error
		foodBank, err = srv.catalog.CreateFoodBank(ctx, uow, p, input)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.uow.log(ctx).InfoContext(ctx, "food bank created",
		slog.Int64("food_bank_id", foodBank.ID),
		slog.Int64("operator_id", foodBank.OperatorID),
	)

	return foodBank, nil
}

func (srv *catalogService) ListFoodBanks(ctx context.Context, district string) ([]*entity.FoodBank, error) {
	var foodBanks []*entity.FoodBank
	err := srv.uow.read(ctx, "list food banks", func(uow repository.RepositoryFactory) error {
		var err error
		foodBanks, err = uow.FoodBanks().List(ctx, district)

		return errors.Wrap(err, "list food banks")
	})
	if err != nil {
		return nil, err
	}

	return foodBanks, nil
}

func (srv *catalogService) GetFoodBank(ctx context.Context, p entity.Principal, id int64) (*entity.FoodBankWithInventory, error) {
	var result *entity.FoodBankWithInventory
	err := srv.uow.read(ctx, "get food bank", func(uow repository.RepositoryFactory) error {
		foodBank, err := uow.FoodBanks().FindByID(ctx, id)
		if err != nil {
			return err
		}
		result = &entity.FoodBankWithInventory{FoodBank: *foodBank}

		if !authz.Allowed(p, authz.ReadInventory, authz.Target{FoodBank: foodBank}) {
			return nil
		}
		records, err := uow.Inventory().ListByFoodBank(ctx, foodBank.ID)
		if err != nil {
			return errors.Wrap(err, "list food bank inventory")
		}
		result.Inventory = append([]*entity.InventoryRecord{}, records...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (srv *catalogService) CreateFoodItem(ctx context.Context, p entity.Principal, input entity.FoodItem) (*entity.FoodItem, error) {
	var item *entity.FoodItem
	err := srv.uow.write(ctx, "create food item", func(uow repository.RepositoryFactory) error {
		var err error
		item, err = srv.catalog.CreateFoodItem(ctx, uow, p, input)

		return err
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (srv *catalogService) ListFoodItems(ctx context.Context) ([]*entity.FoodItem, error) {
	var items []*entity.FoodItem
	err := srv.uow.read(ctx, "list food items", func(uow repository.RepositoryFactory) error {
		var err error
		items, err = uow.FoodItems().List(ctx)

		return errors.Wrap(err, "list food items")
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (srv *catalogService) CreateDistrict(ctx context.Context, p entity.Principal, input entity.District) (*entity.District, error) {
	var district *entity.District
	err := srv.uow.write(ctx, "create district", func(uow repository.RepositoryFactory) error {
		var err error
		district, err = srv.catalog.CreateDistrict(ctx, uow, p, input)

		return err
	})
	if err != nil {
		return nil, err
	}

	return district, nil
}

func (srv *catalogService) ListDistricts(ctx context.Context) ([]*entity.District, error) {
	var districts []*entity.District
	err := srv.uow.read(ctx, "list districts", func(uow repository.RepositoryFactory) error {
		var err error
		districts, err = uow.Districts().List(ctx)

		return errors.Wrap(err, "list districts")
	})
	if err != nil {
		return nil, err
	}

	return districts, nil
}

func (srv *catalogService) GetDistrict(ctx context.Context, id int64) (*entity.District, error) {
	var district *entity.District
	err := srv.uow.read(ctx, "get district", func(uow repository.RepositoryFactory) error {
		var err error
		district, err = uow.Districts().FindByID(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return district, nil
}
