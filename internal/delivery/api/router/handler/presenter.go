package handler

import (
	"time"

	"foodaid/internal/domain/entity"
)

// ActorResponse is the public shape of an actor.
type ActorResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func newActorResponse(a *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role.String(),
		IsActive:  a.Active,
		CreatedAt: a.CreatedAt,
	}
}

// RequestItemResponse is one line of a request.
type RequestItemResponse struct {
	ID         int64 `json:"id"`
	FoodItemID int64 `json:"food_item_id"`
	Quantity   int   `json:"quantity"`
}

// RequestResponse is the authenticated view of a request.
type RequestResponse struct {
	ID             int64                 `json:"id"`
	TrackingNumber string                `json:"tracking_number"`
	UserID         int64                 `json:"user_id"`
	Location       string                `json:"location"`
	District       string                `json:"district"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	Status         string                `json:"status"`
	AssignedToID   *int64                `json:"assigned_to_id"`
	CreatedAt      time.Time             `json:"created_at"`
	FulfilledAt    *time.Time            `json:"fulfilled_at"`
	Items          []RequestItemResponse `json:"request_items"`
}

func newRequestResponse(r *entity.Request) RequestResponse {
	items := make([]RequestItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, RequestItemResponse{ID: item.ID, FoodItemID: item.FoodItemID, Quantity: item.Quantity})
	}

	return RequestResponse{
		ID:             r.ID,
		TrackingNumber: r.TrackingNumber,
		UserID:         r.RequesterID,
		Location:       r.Location,
		District:       r.District,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Status:         r.Status.String(),
		AssignedToID:   r.AssignedToID,
		CreatedAt:      r.CreatedAt,
		FulfilledAt:    r.FulfilledAt,
		Items:          items,
	}
}

func newRequestResponses(requests []*entity.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, newRequestResponse(r))
	}

	return out
}

// TrackingResponse is the public, unauthenticated view of a request.
type TrackingResponse struct {
	TrackingNumber string                   `json:"tracking_number"`
	Status         string                   `json:"status"`
	CreatedAt      time.Time                `json:"created_at"`
	FulfilledAt    *time.Time               `json:"fulfilled_at"`
	Items          []TrackedItemResponse    `json:"items"`
	FoodBank       *TrackedFoodBankResponse `json:"foodbank"`
}

type TrackedItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type TrackedFoodBankResponse struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	ContactInfo string `json:"contact_info"`
}

func newTrackingResponse(info *entity.TrackingInfo) TrackingResponse {
	items := make([]TrackedItemResponse, 0, len(info.Items))
	for _, item := range info.Items {
		items = append(items, TrackedItemResponse(item))
	}

	resp := TrackingResponse{
		TrackingNumber: info.TrackingNumber,
		Status:         info.Status.String(),
		CreatedAt:      info.CreatedAt,
		FulfilledAt:    info.FulfilledAt,
		Items:          items,
	}
	if info.FoodBank != nil {
		resp.FoodBank = &TrackedFoodBankResponse{
			Name:        info.FoodBank.Name,
			Location:    info.FoodBank.Location,
			ContactInfo: info.FoodBank.ContactInfo,
		}
	}

	return resp
}

// FoodBankResponse is a food bank without its stock.
type FoodBankResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	District    string    `json:"district"`
	ContactInfo string    `json:"contact_info"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	AdminID     int64     `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func newFoodBankResponse(f *entity.FoodBank) FoodBankResponse {
	return FoodBankResponse{
		ID:          f.ID,
		Name:        f.Name,
		Location:    f.Location,
		District:    f.District,
		ContactInfo: f.ContactInfo,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
		AdminID:     f.OperatorID,
		CreatedAt:   f.CreatedAt,
	}
}

func newFoodBankResponses(foodBanks []*entity.FoodBank) []FoodBankResponse {
	out := make([]FoodBankResponse, 0, len(foodBanks))
	for _, f := range foodBanks {
		out = append(out, newFoodBankResponse(f))
	}

	return out
}

// FoodBankDetailResponse is a food bank with the stock the caller may see.
// InventoryItems is null when the caller may not read the stock.
type FoodBankDetailResponse struct {
	FoodBankResponse
	InventoryItems []InventoryResponse `json:"inventory_items"`
}

// InventoryResponse is one stock record.
type InventoryResponse struct {
	ID          int64     `json:"id"`
	FoodBankID  int64     `json:"foodbank_id"`
	FoodItemID  int64     `json:"food_item_id"`
	Quantity    int       `json:"quantity"`
	LastUpdated time.Time `json:"last_updated"`
}

func newInventoryResponse(r *entity.InventoryRecord) InventoryResponse {
	return InventoryResponse{
		ID:          r.ID,
		FoodBankID:  r.FoodBankID,
		FoodItemID:  r.FoodItemID,
		Quantity:    r.Quantity,
		LastUpdated: r.UpdatedAt,
	}
}

func newInventoryResponses(records []*entity.InventoryRecord) []InventoryResponse {
	out := make([]InventoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, newInventoryResponse(r))
	}

	return out
}

type FoodItemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

func newFoodItemResponses(items []*entity.FoodItem) []FoodItemResponse {
	out := make([]FoodItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FoodItemResponse(*item))
	}

	return out
}

type DistrictResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	State   string `json:"state"`
	GeoJSON string `json:"geojson"`
}

func newDistrictResponse(d *entity.District) DistrictResponse {
	return DistrictResponse{ID: d.ID, Name: d.Name, State: d.State, GeoJSON: d.Boundary}
}

func newDistrictResponses(districts []*entity.District) []DistrictResponse {
	out := make([]DistrictResponse, 0, len(districts))
	for _, d := range districts {
		out = append(out, newDistrictResponse(d))
	}

	return out
}

// DashboardResponse carries the organization-wide statistics.
type DashboardResponse struct {
	TotalRequests     int64                    `json:"total_requests"`
	PendingRequests   int64                    `json:"pending_requests"`
	AssignedRequests  int64                    `json:"assigned_requests"`
	FulfilledRequests int64                    `json:"fulfilled_requests"`
	DistrictStats     []DistrictStatsResponse  `json:"district_stats"`
	InventoryStats    []InventoryStatsResponse `json:"inventory_stats"`
}

type DistrictStatsResponse struct {
	District          string `json:"district"`
	TotalRequests     int64  `json:"total_requests"`
	PendingRequests   int64  `json:"pending_requests"`
	AssignedRequests  int64  `json:"assigned_requests"`
	FulfilledRequests int64  `json:"fulfilled_requests"`
}

type InventoryStatsResponse struct {
	FoodItem      string           `json:"food_item"`
	TotalQuantity int64            `json:"total_quantity"`
	FoodBanks     map[string]int64 `json:"foodbanks"`
}

func newDashboardResponse(s *entity.DashboardStats) DashboardResponse {
	resp := DashboardResponse{
		TotalRequests:     s.Total,
		PendingRequests:   s.Pending,
		AssignedRequests:  s.Assigned,
		FulfilledRequests: s.Fulfilled,
		DistrictStats:     make([]DistrictStatsResponse, 0, len(s.Districts)),
		InventoryStats:    make([]InventoryStatsResponse, 0, len(s.Inventory)),
	}
	for _, d := range s.Districts {
		resp.DistrictStats = append(resp.DistrictStats, DistrictStatsResponse{
			District:          d.District,
			TotalRequests:     d.Total,
			PendingRequests:   d.Pending,
			AssignedRequests:  d.Assigned,
			FulfilledRequests: d.Fulfilled,
		})
	}
	for _, i := range s.Inventory {
		resp.InventoryStats = append(resp.InventoryStats, InventoryStatsResponse(i))
	}

	return resp
}
