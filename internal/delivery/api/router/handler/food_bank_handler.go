package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"foodaid/internal/delivery/api/middleware"
	"foodaid/internal/delivery/api/response"
	"foodaid/internal/domain/catalog"
	"foodaid/internal/domain/ledger"
	"foodaid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodBankHandlerParams holds dependencies for FoodBankHandler, injected by Fx.
type FoodBankHandlerParams struct {
	fx.In

	CatalogUC   usecase.CatalogUsecase
	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// FoodBankHandler serves food banks and their inventory
type FoodBankHandler struct {
	catalogUC   usecase.CatalogUsecase
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewFoodBankHandler is the constructor for FoodBankHandler
func NewFoodBankHandler(params FoodBankHandlerParams) *FoodBankHandler {
	return &FoodBankHandler{
		catalogUC:   params.CatalogUC,
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// CreateFoodBankRequest represents the request body for registering a food bank
type CreateFoodBankRequest struct {
	Name        string  `json:"name" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	District    string  `json:"district" validate:"required"`
	ContactInfo string  `json:"contact_info"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	AdminID     int64   `json:"admin_id" validate:"required"`
}

// AddInventoryRequest represents the request body for adding stock
type AddInventoryRequest struct {
	FoodItemID int64 `json:"food_item_id" validate:"required"`
	Quantity   int   `json:"quantity"`
}

// UpdateInventoryRequest represents the request body for replacing stock
type UpdateInventoryRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// ListFoodBanks handles GET /api/v1/foodbanks
func (h *FoodBankHandler) ListFoodBanks(c echo.Context) error {
	foodBanks, err := h.catalogUC.ListFoodBanks(c.Request().Context(), c.QueryParam("district"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodBankResponses(foodBanks))
}

// CreateFoodBank handles POST /api/v1/foodbanks
func (h *FoodBankHandler) CreateFoodBank(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreateFoodBankRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	foodBank, err := h.catalogUC.CreateFoodBank(c.Request().Context(), p, catalog.FoodBankInput{
		Name:        req.Name,
		Location:    req.Location,
		District:    req.District,
		ContactInfo: req.ContactInfo,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OperatorID:  req.AdminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newFoodBankResponse(foodBank))
}

// GetFoodBank handles GET /api/v1/foodbanks/:id
func (h *FoodBankHandler) GetFoodBank(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid id")
	}

	foodBank, err := h.catalogUC.GetFoodBank(c.Request().Context(), p, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := FoodBankDetailResponse{FoodBankResponse: newFoodBankResponse(&foodBank.FoodBank)}
	if foodBank.Inventory != nil {
		resp.InventoryItems = newInventoryResponses(foodBank.Inventory)
	}

	return response.Success(c, http.StatusOK, resp)
}

// ListInventory handles GET /api/v1/foodbanks/:id/inventory
func (h *FoodBankHandler) ListInventory(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid id")
	}

	records, err := h.inventoryUC.ListInventory(c.Request().Context(), p, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInventoryResponses(records))
}

// AddInventory handles POST /api/v1/foodbanks/:id/inventory
func (h *FoodBankHandler) AddInventory(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid id")
	}

	var req AddInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	record, err := h.inventoryUC.AddInventory(c.Request().Context(), p, ledger.Entry{
		FoodBankID: id,
		FoodItemID: req.FoodItemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInventoryResponse(record))
}

// UpdateInventory handles PUT /api/v1/foodbanks/:id/inventory/:itemId, where
// itemId is the food item id.
func (h *FoodBankHandler) UpdateInventory(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid id")
	}
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid itemId")
	}

	var req UpdateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	record, err := h.inventoryUC.UpdateInventory(c.Request().Context(), p, ledger.Entry{
		FoodBankID: id,
		FoodItemID: itemID,
		Quantity:   *req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInventoryResponse(record))
}
