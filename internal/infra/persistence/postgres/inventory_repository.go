package postgres

import (
	"context"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (repo *inventoryRepository) FindByPair(ctx context.Context, foodBankID, foodItemID int64) (*entity.InventoryRecord, error) {
	var recordM model.InventoryModel
	if err := repo.db.WithContext(ctx).
		Where("food_bank_id = ? AND food_item_id = ?", foodBankID, foodItemID).
		Order("id ASC").
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrInventoryRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory record")
	}

	return toInventoryDomain(&recordM), nil
}

func (repo *inventoryRepository) Create(ctx context.Context, record *entity.InventoryRecord) error {
	recordM := &model.InventoryModel{
		FoodBankID: record.FoodBankID,
		FoodItemID: record.FoodItemID,
		Quantity:   record.Quantity,
		UpdatedAt:  record.UpdatedAt,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFoodBankNotFound.WrapMessage("inventory references a missing food bank or food item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory record")
	}
	record.ID = recordM.ID

	return nil
}

// Increment issues a single UPDATE ... SET quantity = quantity + delta so
// concurrent adds never lose stock.
func (repo *inventoryRepository) Increment(ctx context.Context, record *entity.InventoryRecord, delta int) error {
	recordM := model.InventoryModel{ID: record.ID}
	result := repo.db.WithContext(ctx).
		Model(&recordM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": record.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment inventory")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInventoryRecordNotFound
	}
	record.Quantity = recordM.Quantity

	return nil
}

func (repo *inventoryRepository) SetQuantity(ctx context.Context, record *entity.InventoryRecord, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{ID: record.ID}).
		Updates(map[string]any{
			"quantity":   quantity,
			"updated_at": record.UpdatedAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidQuantity
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set inventory quantity")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInventoryRecordNotFound
	}
	record.Quantity = quantity

	return nil
}

func (repo *inventoryRepository) ListByFoodBank(ctx context.Context, foodBankID int64) ([]*entity.InventoryRecord, error) {
	return repo.list(repo.db.WithContext(ctx).Where("food_bank_id = ?", foodBankID).Order("food_item_id ASC"))
}

func (repo *inventoryRepository) ListAll(ctx context.Context) ([]*entity.InventoryRecord, error) {
	return repo.list(repo.db.WithContext(ctx).Order("id ASC"))
}

func (repo *inventoryRepository) list(query *gorm.DB) ([]*entity.InventoryRecord, error) {
	var recordModels []*model.InventoryModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	records := make([]*entity.InventoryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toInventoryDomain(recordM))
	}

	return records, nil
}

func toInventoryDomain(m *model.InventoryModel) *entity.InventoryRecord {
	return &entity.InventoryRecord{
		ID:         m.ID,
		FoodBankID: m.FoodBankID,
		FoodItemID: m.FoodItemID,
		Quantity:   m.Quantity,
		UpdatedAt:  m.UpdatedAt,
	}
}
