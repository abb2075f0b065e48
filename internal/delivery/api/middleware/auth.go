package middleware

import (
	"log/slog"
	"strings"

	"foodaid/internal/delivery/api/response"
	deliverycontext "foodaid/internal/delivery/context"
	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/service"
	"foodaid/internal/errors"
	"foodaid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	ActorUC      usecase.ActorUsecase
	Logger       *slog.Logger
}

// AuthMiddleware turns a bearer access token into the principal handlers act for.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	actorUC  usecase.ActorUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		actorUC:  params.ActorUC,
		logger:   params.Logger,
	}
}

// Authenticate validates the access token and resolves it to an active actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx := c.Request().Context()
		principal, err := m.actorUC.Authenticate(ctx, claims)
		if errors.Is(err, usecase.ErrAuthenticationFailed) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token does not belong to an active user")
		}
		if err != nil {
			return err
		}

		deliverycontext.SetPrincipal(c, principal)
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Int64("actor_id", principal.ActorID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// GetPrincipal returns the authenticated actor set by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	return deliverycontext.GetPrincipal(c)
}
