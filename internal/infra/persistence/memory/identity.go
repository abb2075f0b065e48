package memory

import (
	"context"
	"sort"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/errors"
)

const (
	tableActors    = "actors"
	tableFoodBanks = "food_banks"
	tableFoodItems = "food_items"
	tableDistricts = "districts"
	tableInventory = "inventory"
	tableRequests  = "requests"
	tableLineItems = "request_items"
)

var errDuplicateKey = errors.New("duplicate key value violates unique constraint")

type actorRepository struct{ b binding }

func (r actorRepository) FindByID(_ context.Context, id int64) (*entity.Actor, error) {
	var (
		found entity.Actor
		ok    bool
	)
	r.b.read(func(st *state) { found, ok = st.actors[id] })
	if !ok {
		return nil, domainerrors.ErrActorNotFound
	}

	return &found, nil
}

func (r actorRepository) FindByUsername(_ context.Context, username string) (*entity.Actor, error) {
	var found *entity.Actor
	r.b.read(func(st *state) {
		for _, a := range st.actors {
			if a.Username == username {
				cp := a
				found = &cp

				return
			}
		}
	})
	if found == nil {
		return nil, domainerrors.ErrActorNotFound
	}

	return found, nil
}

func (r actorRepository) Create(_ context.Context, actor *entity.Actor) error {
	var err error
	r.b.write(func(st *state) {
		for _, a := range st.actors {
			if a.Username == actor.Username {
				err = domainerrors.NewDatabaseExecuteError(errDuplicateKey, "actors.username="+actor.Username)

				return
			}
		}
		actor.ID = st.nextID(tableActors)
		st.actors[actor.ID] = *actor
	})

	return err
}

type foodBankRepository struct{ b binding }

func (r foodBankRepository) Create(_ context.Context, foodBank *entity.FoodBank) error {
	var err error
	r.b.write(func(st *state) {
		for _, fb := range st.foodBanks {
			if fb.OperatorID == foodBank.OperatorID {
				err = domainerrors.ErrOperatorAlreadyAssigned

				return
			}
		}
		foodBank.ID = st.nextID(tableFoodBanks)
		st.foodBanks[foodBank.ID] = *foodBank
	})

	return err
}

func (r foodBankRepository) FindByID(_ context.Context, id int64) (*entity.FoodBank, error) {
	var (
		found entity.FoodBank
		ok    bool
	)
	r.b.read(func(st *state) { found, ok = st.foodBanks[id] })
	if !ok {
		return nil, domainerrors.ErrFoodBankNotFound
	}

	return &found, nil
}

func (r foodBankRepository) FindByOperatorID(_ context.Context, operatorID int64) (*entity.FoodBank, error) {
	var found *entity.FoodBank
	r.b.read(func(st *state) {
		for _, fb := range st.foodBanks {
			if fb.OperatorID == operatorID {
				cp := fb
				found = &cp

				return
			}
		}
	})
	if found == nil {
		return nil, domainerrors.ErrFoodBankNotFound
	}

	return found, nil
}

func (r foodBankRepository) List(_ context.Context, district string) ([]*entity.FoodBank, error) {
	var out []*entity.FoodBank
	r.b.read(func(st *state) {
		for _, fb := range st.foodBanks {
			if district != "" && fb.District != district {
				continue
			}
			cp := fb
			out = append(out, &cp)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
