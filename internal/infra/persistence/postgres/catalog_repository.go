package postgres

import (
	"context"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/infra/persistence/model"
	"foodaid/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// foodItemRepository implements the repository.FoodItemRepository interface.
type foodItemRepository struct {
	q *query.Query
}

// NewFoodItemRepository is the constructor for foodItemRepository.
func NewFoodItemRepository(db *gorm.DB) repository.FoodItemRepository {
	return &foodItemRepository{q: query.Use(db)}
}

func (repo *foodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	itemM := &model.FoodItemModel{Name: item.Name, Icon: item.Icon, Category: item.Category}
	if err := repo.q.FoodItemModel.WithContext(ctx).Create(itemM); err != nil {
		if isUniqueConstraintViolation(err, "") {
			return domainerrors.ErrFoodItemAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food item")
	}
	item.ID = itemM.ID

	return nil
}

func (repo *foodItemRepository) FindByID(ctx context.Context, id int64) (*entity.FoodItem, error) {
	return repo.first(ctx, repo.q.FoodItemModel.ID.Eq(id))
}

func (repo *foodItemRepository) FindByName(ctx context.Context, name string) (*entity.FoodItem, error) {
	return repo.first(ctx, repo.q.FoodItemModel.Name.Eq(name))
}

func (repo *foodItemRepository) first(ctx context.Context, cond gen.Condition) (*entity.FoodItem, error) {
	itemM, err := repo.q.FoodItemModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFoodItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find food item")
	}

	return toFoodItemDomain(itemM), nil
}

func (repo *foodItemRepository) List(ctx context.Context) ([]*entity.FoodItem, error) {
	itemModels, err := repo.q.FoodItemModel.WithContext(ctx).Order(repo.q.FoodItemModel.ID).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food items")
	}

	items := make([]*entity.FoodItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toFoodItemDomain(itemM))
	}

	return items, nil
}

func toFoodItemDomain(m *model.FoodItemModel) *entity.FoodItem {
	return &entity.FoodItem{ID: m.ID, Name: m.Name, Icon: m.Icon, Category: m.Category}
}

// districtRepository implements the repository.DistrictRepository interface.
type districtRepository struct {
	q *query.Query
}

// NewDistrictRepository is the constructor for districtRepository.
func NewDistrictRepository(db *gorm.DB) repository.DistrictRepository {
	return &districtRepository{q: query.Use(db)}
}

func (repo *districtRepository) Create(ctx context.Context, district *entity.District) error {
	districtM := &model.DistrictModel{Name: district.Name, State: district.State}
	if district.Boundary != "" {
		districtM.Boundary = datatypes.JSON(district.Boundary)
	}
	if err := repo.q.DistrictModel.WithContext(ctx).Create(districtM); err != nil {
		if isUniqueConstraintViolation(err, "") {
			return domainerrors.ErrDistrictAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create district")
	}
	district.ID = districtM.ID

	return nil
}

func (repo *districtRepository) FindByID(ctx context.Context, id int64) (*entity.District, error) {
	return repo.first(ctx, repo.q.DistrictModel.ID.Eq(id))
}

func (repo *districtRepository) FindByName(ctx context.Context, name string) (*entity.District, error) {
	return repo.first(ctx, repo.q.DistrictModel.Name.Eq(name))
}

func (repo *districtRepository) first(ctx context.Context, cond gen.Condition) (*entity.District, error) {
	districtM, err := repo.q.DistrictModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDistrictNotFound
		}

		return nil, errors.Wrap(err, "failed to find district")
	}

	return toDistrictDomain(districtM), nil
}

func (repo *districtRepository) List(ctx context.Context) ([]*entity.District, error) {
	districtModels, err := repo.q.DistrictModel.WithContext(ctx).Order(repo.q.DistrictModel.ID).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list districts")
	}

	districts := make([]*entity.District, 0, len(districtModels))
	for _, districtM := range districtModels {
		districts = append(districts, toDistrictDomain(districtM))
	}

	return districts, nil
}

func toDistrictDomain(m *model.DistrictModel) *entity.District {
	return &entity.District{ID: m.ID, Name: m.Name, State: m.State, Boundary: string(m.Boundary)}
}
