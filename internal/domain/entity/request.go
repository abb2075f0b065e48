package entity

import "time"

// RequestStatus is a state of the request lifecycle.
type RequestStatus string

const (
	StatusPending   RequestStatus = "Pending"
	StatusAssigned  RequestStatus = "Assigned"
	StatusFulfilled RequestStatus = "Fulfilled"
	// StatusCancelled is named by the domain but no transition produces it.
	StatusCancelled RequestStatus = "Cancelled"
)

// String returns the string representation of the status.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusFulfilled, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves the status.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusFulfilled || s == StatusCancelled
}

// Request is one aid application. It exclusively owns its line items.
type Request struct {
	ID             int64
	TrackingNumber string // Public identifier, immutable once assigned.
	RequesterID    int64
	Location       string
	District       string
	Latitude       float64
	Longitude      float64
	Status         RequestStatus
	AssignedToID   *int64 // Food bank the request is assigned to, if any.
	CreatedAt      time.Time
	FulfilledAt    *time.Time
	Items          []RequestLineItem
}

// IsAssignedTo reports whether the request is assigned to the food bank.
func (r *Request) IsAssignedTo(foodBankID int64) bool {
	return r.AssignedToID != nil && *r.AssignedToID == foodBankID
}

// RequestLineItem is one requested food item with its quantity.
type RequestLineItem struct {
	ID         int64
	FoodItemID int64
	Quantity   int
}

// RequestFilter narrows a request listing. Empty fields do not filter.
type RequestFilter struct {
	Status   RequestStatus
	District string
}

// TrackedItem is a line item as shown on the public tracking page.
type TrackedItem struct {
	Name     string
	Quantity int
}

// TrackedFoodBank is the public contact detail of an assigned food bank.
type TrackedFoodBank struct {
	Name        string
	Location    string
	ContactInfo string
}

// TrackingInfo is the public view of a request. It carries no actor detail.
type TrackingInfo struct {
	TrackingNumber string
	Status         RequestStatus
	CreatedAt      time.Time
	FulfilledAt    *time.Time
	Items          []TrackedItem
	FoodBank       *TrackedFoodBank
}
