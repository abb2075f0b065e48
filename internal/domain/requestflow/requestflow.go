// Package requestflow is the lifecycle of an aid request.
//
//	Pending --assign(>0)--> Assigned --fulfil--> Fulfilled
//
// Fulfilled is terminal. Cancelled is a named status that no transition
// produces. Every operation runs against the unit of work it is given;
// the caller decides whether that unit of work is transactional.
package requestflow

import (
	"context"
	"strings"
	"time"

	"foodaid/internal/domain/authz"
	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/domain/tracking"
	"foodaid/internal/errors"
)

// Clock returns the current time.
type Clock func() time.Time

// Flow implements the request operations.
type Flow struct {
	tracking *tracking.Generator
	now      Clock
}

// New returns a Flow issuing tracking numbers from gen.
func New(gen *tracking.Generator, clock Clock) *Flow {
	if clock == nil {
		clock = time.Now
	}

	return &Flow{tracking: gen, now: clock}
}

// LineItemInput is one requested food item.
type LineItemInput struct {
	FoodItemID int64
	Quantity   int
}

// CreateInput describes a new request.
type CreateInput struct {
	Location  string
	District  string
	Latitude  float64
	Longitude float64
	Items     []LineItemInput
}

// GuestInput is a request submitted without authentication.
type GuestInput struct {
	NationalID string
	CreateInput
}

// UpdateInput carries the fields an update may change. Nil fields are left alone.
type UpdateInput struct {
	Status       *entity.RequestStatus
	AssignedToID *int64
}

// Create submits a request on behalf of an authenticated recipient.
func (f *Flow) Create(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, in CreateInput) (*entity.Request, error) {
	return f.create(ctx, uow, p, in)
}

// CreateGuest materialises (or reuses) the guest actor keyed by the national
// ID and submits the request as that actor. Both writes belong to the same
// unit of work. A deactivated guest actor is refused. Line items without a
// quantity ask for one unit.
func (f *Flow) CreateGuest(ctx context.Context, uow repository.RepositoryFactory, in GuestInput) (*entity.Request, error) {
	nationalID := strings.TrimSpace(in.NationalID)
	if nationalID == "" {
		return nil, domainerrors.ErrNationalIDRequired
	}

	actor, err := uow.Actors().FindByUsername(ctx, entity.GuestUsername(nationalID))
	switch {
	case err == nil:
		if !actor.Active {
			return nil, domainerrors.ErrForbidden.WithDetails("guest actor is inactive")
		}
	case errors.Is(err, domainerrors.ErrActorNotFound):
		actor = entity.NewGuestActor(nationalID, f.now())
		if err := uow.Actors().Create(ctx, actor); err != nil {
			return nil, errors.Wrap(err, "create guest actor")
		}
	default:
		return nil, errors.Wrap(err, "find guest actor")
	}

	create := in.CreateInput
	create.Items = make([]LineItemInput, len(in.Items))
	for i, item := range in.Items {
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		create.Items[i] = item
	}

	return f.create(ctx, uow, entity.Principal{ActorID: actor.ID, Role: actor.Role}, create)
}

func (f *Flow) create(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, in CreateInput) (*entity.Request, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	if _, err := uow.Districts().FindByName(ctx, in.District); err != nil {
		return nil, err
	}
	for _, item := range in.Items {
		if _, err := uow.FoodItems().FindByID(ctx, item.FoodItemID); err != nil {
			return nil, err
		}
	}
	if err := authz.Authorize(p, authz.CreateRequest, authz.Target{}); err != nil {
		return nil, err
	}

	trackingNumber, err := f.tracking.GenerateUnique(ctx, uow.Requests().TrackingNumberExists)
	if err != nil {
		return nil, err
	}

	request := &entity.Request{
		TrackingNumber: trackingNumber,
		RequesterID:    p.ActorID,
		Location:       in.Location,
		District:       in.District,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		Status:         entity.StatusPending,
		CreatedAt:      f.now(),
		Items:          make([]entity.RequestLineItem, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		request.Items = append(request.Items, entity.RequestLineItem{
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
		})
	}

	if err := uow.Requests().Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	return request, nil
}

func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.District) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("district is required")
	}
	if len(in.Items) == 0 {
		return domainerrors.ErrEmptyRequestItems
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return domainerrors.ErrInvalidQuantity.WithDetails("line item quantity must be at least 1")
		}
	}

	return nil
}

// Get returns a request the principal may read.
func (f *Flow) Get(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, id int64) (*entity.Request, error) {
	request, err := uow.Requests().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ownFoodBank, err := operatorFoodBank(ctx, uow, p)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(p, authz.ReadRequest, authz.Target{Request: request, OwnFoodBank: ownFoodBank}); err != nil {
		return nil, err
	}

	return request, nil
}

// List returns the requests visible to the principal, newest first.
func (f *Flow) List(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, filter entity.RequestFilter) ([]*entity.Request, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(filter.Status.String())
	}

	ownFoodBank, err := operatorFoodBank(ctx, uow, p)
	if err != nil {
		return nil, err
	}
	scope, err := authz.RequestScope(p, ownFoodBank)
	if err != nil {
		return nil, err
	}

	requests, err := uow.Requests().List(ctx, scope, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list requests")
	}

	return requests, nil
}

// Update applies an assignment and/or a status change. The assignment is
// applied first. An assignment to an id > 0 forces the Assigned status; an
// id <= 0 clears the assignment and leaves the status untouched.
func (f *Flow) Update(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal, id int64, in UpdateInput) (*entity.Request, error) {
	request, err := uow.Requests().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Status == nil && in.AssignedToID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status or assigned_to_id is required")
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(in.Status.String())
	}

	if in.AssignedToID != nil && *in.AssignedToID > 0 {
		if _, err := uow.FoodBanks().FindByID(ctx, *in.AssignedToID); err != nil {
			return nil, err
		}
	}
	ownFoodBank, err := operatorFoodBank(ctx, uow, p)
	if err != nil {
		return nil, err
	}

	if in.AssignedToID != nil {
		if err := authz.Authorize(p, authz.AssignRequest, authz.Target{Request: request}); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		target := authz.Target{Request: request, OwnFoodBank: ownFoodBank, Status: *in.Status}
		if err := authz.Authorize(p, authz.SetRequestStatus, target); err != nil {
			return nil, err
		}
	}

	if request.Status.IsTerminal() {
		return nil, domainerrors.ErrRequestFinalized.WithDetails("request is " + request.Status.String())
	}

	if in.AssignedToID != nil {
		assign(request, *in.AssignedToID)
	}
	if in.Status != nil {
		if err := f.transition(request, *in.Status); err != nil {
			return nil, err
		}
	}

	if err := uow.Requests().UpdateState(ctx, request); err != nil {
		return nil, errors.Wrap(err, "update request state")
	}

	return request, nil
}

func assign(request *entity.Request, foodBankID int64) {
	if foodBankID <= 0 {
		request.AssignedToID = nil

		return
	}

	id := foodBankID
	request.AssignedToID = &id
	request.Status = entity.StatusAssigned
}

func (f *Flow) transition(request *entity.Request, to entity.RequestStatus) error {
	switch to {
	case entity.StatusAssigned:
		if request.AssignedToID == nil {
			return domainerrors.ErrInvalidTransition.WithDetails("request has no food bank to be assigned to")
		}
		request.Status = entity.StatusAssigned
	case entity.StatusFulfilled:
		if request.Status != entity.StatusAssigned {
			return domainerrors.ErrInvalidTransition.WithDetails("only assigned requests can be fulfilled")
		}
		now := f.now()
		request.Status = entity.StatusFulfilled
		request.FulfilledAt = &now
	default:
		return domainerrors.ErrInvalidStatus.WithDetails("no transition to " + to.String())
	}

	return nil
}

// Track returns the public view of a request. Malformed tracking numbers
// are reported as not found.
func (f *Flow) Track(ctx context.Context, uow repository.RepositoryFactory, trackingNumber string) (*entity.TrackingInfo, error) {
	if !tracking.Validate(trackingNumber) {
		return nil, domainerrors.ErrRequestNotFound
	}

	request, err := uow.Requests().FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	info := &entity.TrackingInfo{
		TrackingNumber: request.TrackingNumber,
		Status:         request.Status,
		CreatedAt:      request.CreatedAt,
		FulfilledAt:    request.FulfilledAt,
		Items:          make([]entity.TrackedItem, 0, len(request.Items)),
	}
	for _, item := range request.Items {
		foodItem, err := uow.FoodItems().FindByID(ctx, item.FoodItemID)
		if err != nil {
			return nil, errors.Wrap(err, "resolve tracked food item")
		}
		info.Items = append(info.Items, entity.TrackedItem{Name: foodItem.Name, Quantity: item.Quantity})
	}

	if request.AssignedToID != nil {
		foodBank, err := uow.FoodBanks().FindByID(ctx, *request.AssignedToID)
		switch {
		case err == nil:
			info.FoodBank = &entity.TrackedFoodBank{
				Name:        foodBank.Name,
				Location:    foodBank.Location,
				ContactInfo: foodBank.ContactInfo,
			}
		case !errors.Is(err, domainerrors.ErrFoodBankNotFound):
			return nil, errors.Wrap(err, "resolve tracked food bank")
		}
	}

	return info, nil
}

// operatorFoodBank resolves the food bank administered by an operator
// principal. Other roles have none.
func operatorFoodBank(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal) (*entity.FoodBank, error) {
	if p.Role != entity.RoleFoodBankOperator {
		return nil, nil
	}

	return uow.FoodBanks().FindByOperatorID(ctx, p.ActorID)
}
