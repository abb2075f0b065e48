package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"foodaid/internal/delivery/api/response"
	"foodaid/internal/domain/requestflow"
	"foodaid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PublicHandlerParams holds dependencies for PublicHandler, injected by Fx.
type PublicHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// PublicHandler serves the unauthenticated endpoints
type PublicHandler struct {
	requestUC usecase.RequestUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler
func NewPublicHandler(params PublicHandlerParams) *PublicHandler {
	return &PublicHandler{
		requestUC: params.RequestUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// PublicRequestRequest represents a request submitted without an account
type PublicRequestRequest struct {
	ICNumber  string            `json:"ic_number"`
	Address   string            `json:"address" validate:"required"`
	District  string            `json:"district" validate:"required"`
	Latitude  float64           `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64           `json:"longitude" validate:"gte=-180,lte=180"`
	Items     []LineItemRequest `json:"items" validate:"dive"`
}

// PublicRequestResponse tells a guest how to track the request
type PublicRequestResponse struct {
	RequestID      int64  `json:"request_id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

// CreatePublicRequest handles POST /public/requests
func (h *PublicHandler) CreatePublicRequest(c echo.Context) error {
	var req PublicRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	request, err := h.requestUC.CreateGuestRequest(c.Request().Context(), requestflow.GuestInput{
		NationalID: req.ICNumber,
		CreateInput: requestflow.CreateInput{
			Location:  req.Address,
			District:  req.District,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Items:     lineItems(req.Items),
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, PublicRequestResponse{
		RequestID:      request.ID,
		TrackingNumber: request.TrackingNumber,
		Status:         request.Status.String(),
	})
}

// TrackRequest handles GET /public/track/:trackingNumber
func (h *PublicHandler) TrackRequest(c echo.Context) error {
	info, err := h.requestUC.TrackRequest(c.Request().Context(), c.Param("trackingNumber"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTrackingResponse(info))
}

// TrackingQRCode handles GET /public/track/:trackingNumber/qrcode
func (h *PublicHandler) TrackingQRCode(c echo.Context) error {
	png, err := h.requestUC.TrackingQRCode(c.Request().Context(), c.Param("trackingNumber"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListFoodBanks handles GET /public/foodbanks
func (h *PublicHandler) ListFoodBanks(c echo.Context) error {
	foodBanks, err := h.catalogUC.ListFoodBanks(c.Request().Context(), c.QueryParam("district"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodBankResponses(foodBanks))
}

// ListDistricts handles GET /public/districts
func (h *PublicHandler) ListDistricts(c echo.Context) error {
	districts, err := h.catalogUC.ListDistricts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDistrictResponses(districts))
}

// GetDistrict handles GET /public/districts/:id
func (h *PublicHandler) GetDistrict(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid id")
	}

	district, err := h.catalogUC.GetDistrict(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDistrictResponse(district))
}

// ListFoodItems handles GET /public/food-items
func (h *PublicHandler) ListFoodItems(c echo.Context) error {
	items, err := h.catalogUC.ListFoodItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodItemResponses(items))
}
