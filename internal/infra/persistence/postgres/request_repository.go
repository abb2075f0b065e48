package postgres

import (
	"context"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

// Create inserts the request and its line items. GORM writes the Items
// association in the same statement batch; the caller's transaction makes
// the pair atomic.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)
	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFoodItemNotFound.WrapMessage("request references a missing food item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID
	for i := range requestM.Items {
		request.Items[i].ID = requestM.Items[i].ID
	}

	return nil
}

func (repo *requestRepository) FindByID(ctx context.Context, id int64) (*entity.Request, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *requestRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Request, error) {
	return repo.first(ctx, "tracking_number = ?", trackingNumber)
}

func (repo *requestRepository) first(ctx context.Context, cond string, arg any) (*entity.Request, error) {
	var requestM model.RequestModel
	if err := repo.withItems(ctx).Where(cond, arg).First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request")
	}

	return toRequestDomain(&requestM), nil
}

// TrackingNumberExists reads from the primary; a lagging replica could hand
// out a number that was just issued.
func (repo *requestRepository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.RequestModel{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check tracking number")
	}

	return count > 0, nil
}

func (repo *requestRepository) List(ctx context.Context, scope entity.RequestScope, filter entity.RequestFilter) ([]*entity.Request, error) {
	query := repo.withItems(ctx).Order("created_at DESC").Order("id DESC")

	switch {
	case scope.All:
	case scope.RequesterID != nil:
		query = query.Where("requester_id = ?", *scope.RequesterID)
	case scope.FoodBankID != nil:
		query = query.Where("(assigned_to_id = ? OR (status = ? AND district = ?))",
			*scope.FoodBankID, entity.StatusPending.String(), scope.District)
	default:
		return []*entity.Request{}, nil
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.District != "" {
		query = query.Where("district = ?", filter.District)
	}

	var requestModels []*model.RequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	requests := make([]*entity.Request, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

func (repo *requestRepository) UpdateState(ctx context.Context, request *entity.Request) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{ID: request.ID}).
		Updates(map[string]any{
			"status":         request.Status.String(),
			"assigned_to_id": request.AssignedToID,
			"fulfilled_at":   request.FulfilledAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update request state")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRequestNotFound
	}

	return nil
}

type requestCountRow struct {
	District string
	Status   string
	Count    int64
}

func (repo *requestRepository) CountByDistrictAndStatus(ctx context.Context) ([]entity.RequestCountRow, error) {
	var rows []requestCountRow
	if err := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Select("district, status, COUNT(*) AS count").
		Group("district, status").
		Order("district, status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count requests")
	}

	out := make([]entity.RequestCountRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.RequestCountRow{
			District: row.District,
			Status:   entity.RequestStatus(row.Status),
			Count:    row.Count,
		})
	}

	return out, nil
}

func (repo *requestRepository) withItems(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func toRequestDomain(m *model.RequestModel) *entity.Request {
	request := &entity.Request{
		ID:             m.ID,
		TrackingNumber: m.TrackingNumber,
		RequesterID:    m.RequesterID,
		Location:       m.Location,
		District:       m.District,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Status:         entity.RequestStatus(m.Status),
		AssignedToID:   m.AssignedToID,
		CreatedAt:      m.CreatedAt,
		FulfilledAt:    m.FulfilledAt,
		Items:          make([]entity.RequestLineItem, 0, len(m.Items)),
	}
	for _, item := range m.Items {
		request.Items = append(request.Items, entity.RequestLineItem{
			ID:         item.ID,
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
		})
	}

	return request
}

func fromRequestDomain(r *entity.Request) *model.RequestModel {
	requestM := &model.RequestModel{
		ID:             r.ID,
		TrackingNumber: r.TrackingNumber,
		RequesterID:    r.RequesterID,
		Location:       r.Location,
		District:       r.District,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Status:         r.Status.String(),
		AssignedToID:   r.AssignedToID,
		CreatedAt:      r.CreatedAt,
		FulfilledAt:    r.FulfilledAt,
		Items:          make([]model.RequestItemModel, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		requestM.Items = append(requestM.Items, model.RequestItemModel{
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
		})
	}

	return requestM
}
