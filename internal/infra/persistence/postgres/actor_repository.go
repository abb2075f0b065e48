package postgres

import (
	"context"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/infra/persistence/model"
	"foodaid/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// actorRepository implements the repository.ActorRepository interface.
type actorRepository struct {
	q *query.Query
}

// NewActorRepository is the constructor for actorRepository.
func NewActorRepository(db *gorm.DB) repository.ActorRepository {
	return &actorRepository{q: query.Use(db)}
}

func (repo *actorRepository) FindByID(ctx context.Context, id int64) (*entity.Actor, error) {
	actorM, err := repo.q.ActorModel.WithContext(ctx).Where(repo.q.ActorModel.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrActorNotFound
		}

		return nil, errors.Wrap(err, "failed to find actor by id")
	}

	return toActorDomain(actorM), nil
}

func (repo *actorRepository) FindByUsername(ctx context.Context, username string) (*entity.Actor, error) {
	actorM, err := repo.q.ActorModel.WithContext(ctx).Where(repo.q.ActorModel.Username.Eq(username)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrActorNotFound
		}

		return nil, errors.Wrap(err, "failed to find actor by username")
	}

	return toActorDomain(actorM), nil
}

func (repo *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	actorM := fromActorDomain(actor)
	if err := repo.q.ActorModel.WithContext(ctx).Create(actorM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create actor")
	}
	actor.ID = actorM.ID
	actor.CreatedAt = actorM.CreatedAt

	return nil
}

func toActorDomain(m *model.ActorModel) *entity.Actor {
	return &entity.Actor{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Role:      entity.Role(m.Role),
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

func fromActorDomain(a *entity.Actor) *model.ActorModel {
	return &model.ActorModel{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role.String(),
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
	}
}
