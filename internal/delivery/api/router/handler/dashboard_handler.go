package handler

import (
	"net/http"

	"foodaid/internal/delivery/api/middleware"
	"foodaid/internal/delivery/api/response"
	"foodaid/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves organization statistics
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// DashboardStats handles GET /api/v1/stats/dashboard
func (h *DashboardHandler) DashboardStats(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	stats, err := h.dashboardUC.DashboardStats(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDashboardResponse(stats))
}
