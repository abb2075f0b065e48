// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodaid/internal/delivery/api/middleware"
	"foodaid/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RequestHandler   *handler.RequestHandler
	PublicHandler    *handler.PublicHandler
	FoodBankHandler  *handler.FoodBankHandler
	CatalogHandler   *handler.CatalogHandler
	DashboardHandler *handler.DashboardHandler
	UserHandler      *handler.UserHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	requestHandler   *handler.RequestHandler
	publicHandler    *handler.PublicHandler
	foodBankHandler  *handler.FoodBankHandler
	catalogHandler   *handler.CatalogHandler
	dashboardHandler *handler.DashboardHandler
	userHandler      *handler.UserHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		requestHandler:   params.RequestHandler,
		publicHandler:    params.PublicHandler,
		foodBankHandler:  params.FoodBankHandler,
		catalogHandler:   params.CatalogHandler,
		dashboardHandler: params.DashboardHandler,
		userHandler:      params.UserHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes, no authentication
	publicGroup := e.Group("/public")
	{
		publicGroup.POST("/requests", r.publicHandler.CreatePublicRequest)
		publicGroup.GET("/track/:trackingNumber", r.publicHandler.TrackRequest)
		publicGroup.GET("/track/:trackingNumber/qrcode", r.publicHandler.TrackingQRCode)
		publicGroup.GET("/foodbanks", r.publicHandler.ListFoodBanks)
		publicGroup.GET("/districts", r.publicHandler.ListDistricts)
		publicGroup.GET("/districts/:id", r.publicHandler.GetDistrict)
		publicGroup.GET("/food-items", r.publicHandler.ListFoodItems)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	requestsGroup := apiV1.Group("/requests")
	{
		requestsGroup.POST("", r.requestHandler.CreateRequest)
		requestsGroup.GET("", r.requestHandler.ListRequests)
		requestsGroup.GET("/:id", r.requestHandler.GetRequest)
		requestsGroup.PUT("/:id", r.requestHandler.UpdateRequest)
	}

	foodBanksGroup := apiV1.Group("/foodbanks")
	{
		foodBanksGroup.GET("", r.foodBankHandler.ListFoodBanks)
		foodBanksGroup.POST("", r.foodBankHandler.CreateFoodBank)
		foodBanksGroup.GET("/:id", r.foodBankHandler.GetFoodBank)
		foodBanksGroup.GET("/:id/inventory", r.foodBankHandler.ListInventory)
		foodBanksGroup.POST("/:id/inventory", r.foodBankHandler.AddInventory)
		foodBanksGroup.PUT("/:id/inventory/:itemId", r.foodBankHandler.UpdateInventory)
	}

	apiV1.POST("/food-items", r.catalogHandler.CreateFoodItem)
	apiV1.POST("/districts", r.catalogHandler.CreateDistrict)
	apiV1.GET("/stats/dashboard", r.dashboardHandler.DashboardStats)

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("/me", r.userHandler.Me)
		usersGroup.GET("/:id", r.userHandler.GetUser)
	}
}
