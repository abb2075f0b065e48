package handler

import (
	"net/http"
	"strconv"

	"foodaid/internal/delivery/api/middleware"
	"foodaid/internal/delivery/api/response"
	"foodaid/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves actor lookups
type UserHandler struct {
	actorUC usecase.ActorUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(actorUC usecase.ActorUsecase) *UserHandler {
	return &UserHandler{actorUC: actorUC}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	actor, err := h.actorUC.Me(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newActorResponse(actor))
}

// GetUser handles GET /api/v1/users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid id")
	}

	actor, err := h.actorUC.GetActor(c.Request().Context(), p, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newActorResponse(actor))
}
