package handler

import (
	"log/slog"
	"net/http"

	"foodaid/internal/delivery/api/middleware"
	"foodaid/internal/delivery/api/response"
	"foodaid/internal/domain/entity"
	"foodaid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the org-admin catalog writes
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

type CreateFoodItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

type CreateDistrictRequest struct {
	Name    string `json:"name" validate:"required"`
	State   string `json:"state"`
	GeoJSON string `json:"geojson"`
}

// CreateFoodItem handles POST /api/v1/food-items
func (h *CatalogHandler) CreateFoodItem(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreateFoodItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	item, err := h.catalogUC.CreateFoodItem(c.Request().Context(), p, entity.FoodItem{
		Name:     req.Name,
		Icon:     req.Icon,
		Category: req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, FoodItemResponse(*item))
}

// CreateDistrict handles POST /api/v1/districts
func (h *CatalogHandler) CreateDistrict(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreateDistrictRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	district, err := h.catalogUC.CreateDistrict(c.Request().Context(), p, entity.District{
		Name:     req.Name,
		State:    req.State,
		Boundary: req.GeoJSON,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDistrictResponse(district))
}
