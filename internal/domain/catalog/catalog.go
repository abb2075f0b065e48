// Package catalog creates the reference data administered by the
// organization: food banks, food items and districts.
package catalog

import (
	"context"
	"slices"
	"strings"
	"time"

	"foodaid/internal/domain/authz"
	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/errors"
)

// Clock returns the current time.
type Clock func() time.Time

// Catalog implements the catalog writes over a unit of work.
type Catalog struct {
	now Clock
}

// New returns a catalog stamping creation times with clock.
func New(clock Clock) *Catalog {
	if clock == nil {
		clock = time.Now
	}

	return &Catalog{now: clock}
}

// FoodBankInput describes a new food bank and the operator who will run it.
type FoodBankInput struct {
	Name        string
	Location    string
	District    string
	ContactInfo string
	Latitude    float64
	Longitude   float64
	OperatorID  int64
}

// CreateFoodBank registers a food bank for an existing operator.
// An operator administers at most one food bank. Names are not unique.
func (c *Catalog) CreateFoodBank(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, in FoodBankInput) (*entity.FoodBank, error) {
	if err := required(map[string]string{"name": in.Name, "location": in.Location, "district": in.District}); err != nil {
		return nil, err
	}

	operator, err := uow.Actors().FindByID(ctx, in.OperatorID)
	if err != nil {
		return nil, err
	}
	if _, err := uow.Districts().FindByName(ctx, in.District); err != nil {
		return nil, err
	}
	if err := authz.Authorize(p, authz.CreateFoodBank, authz.Target{}); err != nil {
		return nil, err
	}

	if operator.Role != entity.RoleFoodBankOperator {
		return nil, domainerrors.ErrInvalidOperatorRole
	}
	_, err = uow.FoodBanks().FindByOperatorID(ctx, operator.ID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrOperatorAlreadyAssigned
	case !errors.Is(err, domainerrors.ErrFoodBankNotFound):
		return nil, errors.Wrap(err, "find operator food bank")
	}

	foodBank := &entity.FoodBank{
		Name:        strings.TrimSpace(in.Name),
		Location:    strings.TrimSpace(in.Location),
		District:    in.District,
		ContactInfo: in.ContactInfo,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		OperatorID:  operator.ID,
		CreatedAt:   c.now(),
	}
	if err := uow.FoodBanks().Create(ctx, foodBank); err != nil {
		return nil, errors.Wrap(err, "create food bank")
	}

	return foodBank, nil
}

// CreateFoodItem adds a food item; names are unique.
func (c *Catalog) CreateFoodItem(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, in entity.FoodItem) (*entity.FoodItem, error) {
	name := strings.TrimSpace(in.Name)
	if err := required(map[string]string{"name": name}); err != nil {
		return nil, err
	}
	if err := authz.Authorize(p, authz.CreateFoodItem, authz.Target{}); err != nil {
		return nil, err
	}

	_, err := uow.FoodItems().FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, domainerrors.ErrFoodItemAlreadyExists.WithDetails(name)
	case !errors.Is(err, domainerrors.ErrFoodItemNotFound):
		return nil, errors.Wrap(err, "find food item")
	}

	item := &entity.FoodItem{Name: name, Icon: in.Icon, Category: in.Category}
	if err := uow.FoodItems().Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "create food item")
	}

	return item, nil
}

// CreateDistrict adds a district; names are unique and the boundary, when
// present, must be a polygonal GeoJSON document.
func (c *Catalog) CreateDistrict(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, in entity.District) (*entity.District, error) {
	name := strings.TrimSpace(in.Name)
	if err := required(map[string]string{"name": name}); err != nil {
		return nil, err
	}
	if err := ValidateBoundary(in.Boundary); err != nil {
		return nil, err
	}
	if err := authz.Authorize(p, authz.CreateDistrict, authz.Target{}); err != nil {
		return nil, err
	}

	_, err := uow.Districts().FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, domainerrors.ErrDistrictAlreadyExists.WithDetails(name)
	case !errors.Is(err, domainerrors.ErrDistrictNotFound):
		return nil, errors.Wrap(err, "find district")
	}

	district := &entity.District{Name: name, State: in.State, Boundary: in.Boundary}
	if err := uow.Districts().Create(ctx, district); err != nil {
		return nil, errors.Wrap(err, "create district")
	}

	return district, nil
}

func required(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(missing, ", ") + " required")
}
