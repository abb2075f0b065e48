package usecase

import (
	"context"
	"time"

	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/service"
	"foodaid/internal/errors"
)

// ErrAuthenticationFailed is returned when verified token claims do not
// resolve to an active actor holding the claimed role.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Clock returns the current time.
type Clock func() time.Time

// ActorUsecase defines the identity use cases
type ActorUsecase interface {
	// Authenticate resolves verified token claims to the principal the core consumes
	Authenticate(ctx context.Context, claims *service.Claims) (entity.Principal, error)

	// Me returns the authenticated actor
	Me(ctx context.Context, p entity.Principal) (*entity.Actor, error)

	// GetActor returns an actor the principal may read
	GetActor(ctx context.Context, p entity.Principal, id int64) (*entity.Actor, error)
}
