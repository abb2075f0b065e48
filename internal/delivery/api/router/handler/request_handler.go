package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"foodaid/internal/delivery/api/middleware"
	"foodaid/internal/delivery/api/response"
	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/requestflow"
	"foodaid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler serves the authenticated request endpoints
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// LineItemRequest is one requested food item
type LineItemRequest struct {
	FoodItemID int64 `json:"food_item_id" validate:"required"`
	Quantity   int   `json:"quantity"`
}

// CreateRequestRequest represents the request body for submitting an aid request
type CreateRequestRequest struct {
	Location  string            `json:"location" validate:"required"`
	District  string            `json:"district" validate:"required"`
	Latitude  float64           `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64           `json:"longitude" validate:"gte=-180,lte=180"`
	Items     []LineItemRequest `json:"items" validate:"dive"`
}

// UpdateRequestRequest represents the request body for assigning or changing status
type UpdateRequestRequest struct {
	Status       *string `json:"status,omitempty"`
	AssignedToID *int64  `json:"assigned_to_id,omitempty"`
}

func lineItems(items []LineItemRequest) []requestflow.LineItemInput {
	out := make([]requestflow.LineItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, requestflow.LineItemInput{FoodItemID: item.FoodItemID, Quantity: item.Quantity})
	}

	return out
}

// CreateRequest handles POST /api/v1/requests
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), p, requestflow.CreateInput{
		Location:  req.Location,
		District:  req.District,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Items:     lineItems(req.Items),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newRequestResponse(request))
}

// ListRequests handles GET /api/v1/requests
func (h *RequestHandler) ListRequests(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	filter := entity.RequestFilter{
		Status:   entity.RequestStatus(c.QueryParam("status")),
		District: c.QueryParam("district"),
	}
	requests, err := h.requestUC.ListRequests(c.Request().Context(), p, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRequestResponses(requests))
}

// GetRequest handles GET /api/v1/requests/:id
func (h *RequestHandler) GetRequest(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid id")
	}

	request, err := h.requestUC.GetRequest(c.Request().Context(), p, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRequestResponse(request))
}

// UpdateRequest handles PUT /api/v1/requests/:id
func (h *RequestHandler) UpdateRequest(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid id")
	}

	var req UpdateRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	input := requestflow.UpdateInput{AssignedToID: req.AssignedToID}
	if req.Status != nil {
		status := entity.RequestStatus(*req.Status)
		input.Status = &status
	}

	request, err := h.requestUC.UpdateRequest(c.Request().Context(), p, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRequestResponse(request))
}
