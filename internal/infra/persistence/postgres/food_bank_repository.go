package postgres

import (
	"context"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodBankRepository implements the repository.FoodBankRepository interface.
type foodBankRepository struct {
	db *gorm.DB
}

// NewFoodBankRepository is the constructor for foodBankRepository.
func NewFoodBankRepository(db *gorm.DB) repository.FoodBankRepository {
	return &foodBankRepository{db: db}
}

func (repo *foodBankRepository) Create(ctx context.Context, foodBank *entity.FoodBank) error {
	foodBankM := fromFoodBankDomain(foodBank)
	if err := repo.db.WithContext(ctx).Omit("Operator").Create(foodBankM).Error; err != nil {
		if isUniqueConstraintViolation(err, "") {
			return domainerrors.ErrOperatorAlreadyAssigned
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrActorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food bank")
	}
	foodBank.ID = foodBankM.ID
	foodBank.CreatedAt = foodBankM.CreatedAt

	return nil
}

func (repo *foodBankRepository) FindByID(ctx context.Context, id int64) (*entity.FoodBank, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *foodBankRepository) FindByOperatorID(ctx context.Context, operatorID int64) (*entity.FoodBank, error) {
	return repo.first(ctx, "operator_id = ?", operatorID)
}

func (repo *foodBankRepository) first(ctx context.Context, cond string, arg any) (*entity.FoodBank, error) {
	var foodBankM model.FoodBankModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&foodBankM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFoodBankNotFound
		}

		return nil, errors.Wrap(err, "failed to find food bank")
	}

	return toFoodBankDomain(&foodBankM), nil
}

func (repo *foodBankRepository) List(ctx context.Context, district string) ([]*entity.FoodBank, error) {
	query := repo.db.WithContext(ctx).Order("id ASC")
	if district != "" {
		query = query.Where("district = ?", district)
	}

	var foodBankModels []*model.FoodBankModel
	if err := query.Find(&foodBankModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list food banks")
	}

	foodBanks := make([]*entity.FoodBank, 0, len(foodBankModels))
	for _, foodBankM := range foodBankModels {
		foodBanks = append(foodBanks, toFoodBankDomain(foodBankM))
	}

	return foodBanks, nil
}

func toFoodBankDomain(m *model.FoodBankModel) *entity.FoodBank {
	return &entity.FoodBank{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		District:    m.District,
		ContactInfo: m.ContactInfo,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		OperatorID:  m.OperatorID,
		CreatedAt:   m.CreatedAt,
	}
}

func fromFoodBankDomain(f *entity.FoodBank) *model.FoodBankModel {
	return &model.FoodBankModel{
		ID:          f.ID,
		Name:        f.Name,
		Location:    f.Location,
		District:    f.District,
		ContactInfo: f.ContactInfo,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
		OperatorID:  f.OperatorID,
		CreatedAt:   f.CreatedAt,
	}
}
