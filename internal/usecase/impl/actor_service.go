package impl

import (
	"context"
	"log/slog"

	"foodaid/internal/domain/authz"
	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/domain/service"
	"foodaid/internal/errors"
	"foodaid/internal/usecase"

	"go.uber.org/fx"
)

type actorService struct {
	uow *unitOfWork
}

// ActorServiceParams holds dependencies for ActorService, injected by Fx.
type ActorServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Logger    *slog.Logger
}

// NewActorService is the constructor for actorService.
func NewActorService(params ActorServiceParams) usecase.ActorUsecase {
	return &actorService{
		uow: newUnitOfWork(params.TxManager, params.Repos, params.Logger),
	}
}

// Authenticate trusts the signature check already done on claims but not the
// role it carries: the stored actor must exist, be active and hold that role.
func (srv *actorService) Authenticate(ctx context.Context, claims *service.Claims) (entity.Principal, error) {
	if claims == nil {
		return entity.Principal{}, usecase.ErrAuthenticationFailed
	}

	var actor *entity.Actor
	err := srv.uow.read(ctx, "authenticate", func(uow repository.RepositoryFactory) error {
		var err error
		actor, err = uow.Actors().FindByID(ctx, claims.ActorID)

		return err
	})
	switch {
	case errors.Is(err, domainerrors.ErrActorNotFound):
		return entity.Principal{}, usecase.ErrAuthenticationFailed
	case err != nil:
		return entity.Principal{}, err
	}

	if !actor.Active || actor.Role != claims.Role {
		srv.uow.log(ctx).WarnContext(ctx, "rejected token for actor",
			slog.Int64("actor_id", actor.ID),
			slog.Bool("active", actor.Active),
			slog.String("claimed_role", claims.Role.String()),
		)

		return entity.Principal{}, usecase.ErrAuthenticationFailed
	}

	return entity.Principal{ActorID: actor.ID, Role: actor.Role}, nil
}

func (srv *actorService) Me(ctx context.Context, p entity.Principal) (*entity.Actor, error) {
	var actor *entity.Actor
	err := srv.uow.read(ctx, "current actor", func(uow repository.RepositoryFactory) error {
		var err error
		actor, err = uow.Actors().FindByID(ctx, p.ActorID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return actor, nil
}

func (srv *actorService) GetActor(ctx context.Context, p entity.Principal, id int64) (*entity.Actor, error) {
	var actor *entity.Actor
	err := srv.uow.read(ctx, "get actor", func(uow repository.RepositoryFactory) error {
		var err error
		actor, err = uow.Actors().FindByID(ctx, id)
		if err != nil {
			return err
		}

		return authz.Authorize(p, authz.ReadActor, authz.Target{Actor: actor})
	})
	if err != nil {
		return nil, err
	}

	return actor, nil
}
