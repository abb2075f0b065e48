package repository

import (
	"context"

	"foodaid/internal/domain/entity"
)

// RequestRepository persists requests together with their line items.
type RequestRepository interface {
	// Create persists the request and all of its line items, assigning IDs.
	Create(ctx context.Context, request *entity.Request) error

	// FindByID retrieves a request with its line items.
	FindByID(ctx context.Context, id int64) (*entity.Request, error)

	// FindByTrackingNumber retrieves a request with its line items.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Request, error)

	// TrackingNumberExists reports whether a request already uses the tracking number.
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)

	// List returns the requests inside scope that pass filter, newest first.
	List(ctx context.Context, scope entity.RequestScope, filter entity.RequestFilter) ([]*entity.Request, error)

	// UpdateState persists Status, AssignedToID and FulfilledAt of the request.
	UpdateState(ctx context.Context, request *entity.Request) error

	// CountByDistrictAndStatus groups every request by (district, status).
	CountByDistrictAndStatus(ctx context.Context) ([]entity.RequestCountRow, error)
}
