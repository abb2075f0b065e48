package usecase

import (
	"context"

	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/requestflow"
)

// RequestUsecase defines the aid request use cases
type RequestUsecase interface {
	// CreateRequest submits a request for the authenticated recipient
	CreateRequest(ctx context.Context, p entity.Principal, input requestflow.CreateInput) (*entity.Request, error)

	// CreateGuestRequest submits a request for an unauthenticated citizen identified by national ID
	CreateGuestRequest(ctx context.Context, input requestflow.GuestInput) (*entity.Request, error)

	// GetRequest returns a single request visible to the principal
	GetRequest(ctx context.Context, p entity.Principal, id int64) (*entity.Request, error)

	// ListRequests returns the requests visible to the principal, newest first
	ListRequests(ctx context.Context, p entity.Principal, filter entity.RequestFilter) ([]*entity.Request, error)

	// UpdateRequest assigns and/or changes the status of a request
	UpdateRequest(ctx context.Context, p entity.Principal, id int64, input requestflow.UpdateInput) (*entity.Request, error)

	// TrackRequest returns the public view of a request
	TrackRequest(ctx context.Context, trackingNumber string) (*entity.TrackingInfo, error)

	// TrackingQRCode renders the tracking URL of an existing request as a PNG QR code
	TrackingQRCode(ctx context.Context, trackingNumber string) ([]byte, error)
}
