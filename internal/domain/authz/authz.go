// Package authz is the single authorization decision table of the system.
//
// Authorize is a pure function of the principal, the operation and the
// already-loaded target entities. Callers load targets first so that a
// missing entity is reported as NotFound before any Forbidden decision.
package authz

import (
	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
)

// Operation is a class of guarded operations.
type Operation string

const (
	CreateFoodBank   Operation = "create_food_bank"
	CreateFoodItem   Operation = "create_food_item"
	CreateDistrict   Operation = "create_district"
	CreateRequest    Operation = "create_request"
	ReadRequest      Operation = "read_request"
	AssignRequest    Operation = "assign_request"
	SetRequestStatus Operation = "set_request_status"
	ModifyInventory  Operation = "modify_inventory"
	ReadInventory    Operation = "read_inventory"
	ViewDashboard    Operation = "view_dashboard"
	ReadActor        Operation = "read_actor"
)

// Target carries the entities an operation acts on. Only the fields the
// operation needs are read.
type Target struct {
	// Request is the request being read or updated.
	Request *entity.Request
	// FoodBank is the food bank whose inventory is touched.
	FoodBank *entity.FoodBank
	// OwnFoodBank is the food bank administered by the principal, if any.
	OwnFoodBank *entity.FoodBank
	// Actor is the actor being read.
	Actor *entity.Actor
	// Status is the status value a caller asks to set.
	Status entity.RequestStatus
}

type rule func(p entity.Principal, t Target) bool

var table = map[Operation]map[entity.Role]rule{
	CreateFoodBank: {
		entity.RoleOrgAdmin: allow,
	},
	CreateFoodItem: {
		entity.RoleOrgAdmin: allow,
	},
	CreateDistrict: {
		entity.RoleOrgAdmin: allow,
	},
	CreateRequest: {
		entity.RoleRecipient: allow,
	},
	ReadRequest: {
		entity.RoleRecipient:        ownsRequest,
		entity.RoleFoodBankOperator: requestVisibleToOwnFoodBank,
		entity.RoleOrgAdmin:         allow,
	},
	AssignRequest: {
		entity.RoleOrgAdmin: allow,
	},
	SetRequestStatus: {
		entity.RoleFoodBankOperator: fulfilsOwnAssignment,
		entity.RoleOrgAdmin:         setsAssigned,
	},
	ModifyInventory: {
		entity.RoleFoodBankOperator: administersFoodBank,
	},
	ReadInventory: {
		entity.RoleRecipient:        allow,
		entity.RoleFoodBankOperator: administersFoodBank,
		entity.RoleOrgAdmin:         allow,
	},
	ViewDashboard: {
		entity.RoleOrgAdmin: allow,
	},
	ReadActor: {
		entity.RoleRecipient:        readsSelf,
		entity.RoleFoodBankOperator: readsSelf,
		entity.RoleOrgAdmin:         allow,
	},
}

// Authorize returns nil when the principal may perform op on target and the
// Forbidden error otherwise.
func Authorize(p entity.Principal, op Operation, t Target) error {
	if Allowed(p, op, t) {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails(string(op))
}

// Allowed is the boolean form of Authorize.
func Allowed(p entity.Principal, op Operation, t Target) bool {
	byRole, ok := table[op]
	if !ok {
		return false
	}
	decide, ok := byRole[p.Role]
	if !ok {
		return false
	}

	return decide(p, t)
}

// RequestScope derives the set of requests the principal may read.
// ownFoodBank is required for operators and ignored for other roles.
func RequestScope(p entity.Principal, ownFoodBank *entity.FoodBank) (entity.RequestScope, error) {
	switch p.Role {
	case entity.RoleOrgAdmin:
		return entity.RequestScope{All: true}, nil
	case entity.RoleRecipient:
		id := p.ActorID

		return entity.RequestScope{RequesterID: &id}, nil
	case entity.RoleFoodBankOperator:
		if !ownFoodBank.AdministeredBy(p.ActorID) {
			return entity.RequestScope{}, domainerrors.ErrForbidden.WithDetails(string(ReadRequest))
		}
		id := ownFoodBank.ID

		return entity.RequestScope{FoodBankID: &id, District: ownFoodBank.District}, nil
	default:
		return entity.RequestScope{}, domainerrors.ErrForbidden.WithDetails(string(ReadRequest))
	}
}

func allow(entity.Principal, Target) bool { return true }

func ownsRequest(p entity.Principal, t Target) bool {
	return t.Request != nil && p.Is(t.Request.RequesterID)
}

func requestVisibleToOwnFoodBank(p entity.Principal, t Target) bool {
	if t.Request == nil || !t.OwnFoodBank.AdministeredBy(p.ActorID) {
		return false
	}
	scope := entity.RequestScope{FoodBankID: &t.OwnFoodBank.ID, District: t.OwnFoodBank.District}

	return scope.Matches(t.Request)
}

func fulfilsOwnAssignment(p entity.Principal, t Target) bool {
	if t.Request == nil || !t.OwnFoodBank.AdministeredBy(p.ActorID) {
		return false
	}

	return t.Request.IsAssignedTo(t.OwnFoodBank.ID) && t.Status == entity.StatusFulfilled
}

func setsAssigned(_ entity.Principal, t Target) bool {
	return t.Status == entity.StatusAssigned
}

func administersFoodBank(p entity.Principal, t Target) bool {
	return t.FoodBank.AdministeredBy(p.ActorID)
}

func readsSelf(p entity.Principal, t Target) bool {
	return t.Actor != nil && p.Is(t.Actor.ID)
}
