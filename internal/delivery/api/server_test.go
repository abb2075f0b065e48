package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodaid/config"
	"foodaid/internal/delivery/api/middleware"
	"foodaid/internal/delivery/api/router"
	"foodaid/internal/delivery/api/router/handler"
	deliverycontext "foodaid/internal/delivery/context"
	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/service"
	"foodaid/internal/infra/auth"
	"foodaid/internal/infra/qrcode"
	"foodaid/internal/testutil"
	"foodaid/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiFixtures holds a fully wired API over a seeded in-memory store.
type apiFixtures struct {
	echo   *echo.Echo
	world  *testutil.World
	tokens service.TokenService
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func createTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	world := testutil.NewWorld(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Tracking.MaxAttempts = 3
	cfg.HTTP.MaxRequestBodySize = "1M"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	txManager := world.Store.TransactionManager()
	repos := world.Store.Repositories()

	requestUC := impl.NewRequestService(impl.RequestServiceParams{
		TxManager: txManager,
		Repos:     repos,
		QRCode:    qrcode.NewQRCodeService(128, "M", "https://aid.example.org/public/track"),
		Config:    cfg,
		Logger:    logger,
	})
	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{TxManager: txManager, Repos: repos, Logger: logger})
	inventoryUC := impl.NewInventoryService(impl.InventoryServiceParams{TxManager: txManager, Repos: repos, Logger: logger})
	dashboardUC := impl.NewDashboardService(impl.DashboardServiceParams{TxManager: txManager, Repos: repos, Logger: logger})
	actorUC := impl.NewActorService(impl.ActorServiceParams{TxManager: txManager, Repos: repos, Logger: logger})

	routerParams := router.RouterParams{
		RequestHandler:   handler.NewRequestHandler(handler.RequestHandlerParams{RequestUC: requestUC, Logger: logger}),
		PublicHandler:    handler.NewPublicHandler(handler.PublicHandlerParams{RequestUC: requestUC, CatalogUC: catalogUC, Logger: logger}),
		FoodBankHandler:  handler.NewFoodBankHandler(handler.FoodBankHandlerParams{CatalogUC: catalogUC, InventoryUC: inventoryUC, Logger: logger}),
		CatalogHandler:   handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC, Logger: logger}),
		DashboardHandler: handler.NewDashboardHandler(dashboardUC),
		UserHandler:      handler.NewUserHandler(actorUC),
		AuthMiddleware:   middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokens, ActorUC: actorUC, Logger: logger}),
	}

	return apiFixtures{
		echo:   newEcho(cfg, logger, routerParams),
		world:  world,
		tokens: tokens,
	}
}

func (fx apiFixtures) token(t *testing.T, a *entity.Actor) string {
	t.Helper()

	token, err := fx.tokens.GenerateAccessToken(a.ID, a.Role)
	require.NoError(t, err)

	return token
}

func (fx apiFixtures) do(t *testing.T, method, path string, body any, as *entity.Actor) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if as != nil {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.token(t, as))
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestAPI_RequestLifecycle(t *testing.T) {
	fx := createTestAPI(t)
	w := fx.world

	rec, env := fx.do(t, http.MethodPost, "/api/v1/requests", map[string]any{
		"location":  "Jalan Bukit Bintang",
		"district":  w.KualaLumpur.Name,
		"latitude":  3.14,
		"longitude": 101.71,
		"items": []map[string]any{
			{"food_item_id": w.Rice.ID, "quantity": 2},
			{"food_item_id": w.Oil.ID, "quantity": 1},
		},
	}, w.Alice)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.RequestResponse](t, env)
	assert.Equal(t, "Pending", created.Status)
	assert.Equal(t, w.Alice.ID, created.UserID)
	assert.Len(t, created.Items, 2)
	assert.Regexp(t, `^B40-[0-9A-F]{6}$`, created.TrackingNumber)
	requestPath := fmt.Sprintf("/api/v1/requests/%d", created.ID)

	rec, env = fx.do(t, http.MethodGet, "/api/v1/requests", nil, w.KLOperator)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]handler.RequestResponse](t, env), 1)

	rec, env = fx.do(t, http.MethodGet, requestPath, nil, w.PGOperator)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, env = fx.do(t, http.MethodPut, requestPath, map[string]any{"assigned_to_id": w.KLFoodBank.ID}, w.Admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Assigned", decode[handler.RequestResponse](t, env).Status)

	rec, env = fx.do(t, http.MethodPut, requestPath, map[string]any{"status": "Fulfilled"}, w.KLOperator)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	fulfilled := decode[handler.RequestResponse](t, env)
	assert.Equal(t, "Fulfilled", fulfilled.Status)
	assert.NotNil(t, fulfilled.FulfilledAt)

	rec, env = fx.do(t, http.MethodPut, requestPath, map[string]any{"status": "Fulfilled"}, w.KLOperator)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "REQUEST_FINALIZED", env.Error.Code)

	rec, env = fx.do(t, http.MethodGet, "/public/track/"+created.TrackingNumber, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tracked := decode[handler.TrackingResponse](t, env)
	assert.Equal(t, "Fulfilled", tracked.Status)
	require.NotNil(t, tracked.FoodBank)
	assert.Equal(t, "KL Food Bank", tracked.FoodBank.Name)
	assert.Equal(t, "+60 3-1234 5678", tracked.FoodBank.ContactInfo)
	assert.Equal(t, []handler.TrackedItemResponse{{Name: "Rice", Quantity: 2}, {Name: "Cooking Oil", Quantity: 1}}, tracked.Items)

	rec, _ = fx.do(t, http.MethodGet, "/public/track/"+created.TrackingNumber+"/qrcode", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec, env = fx.do(t, http.MethodGet, "/api/v1/stats/dashboard", nil, w.Admin)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[handler.DashboardResponse](t, env)
	assert.EqualValues(t, 1, stats.TotalRequests)
	assert.EqualValues(t, 1, stats.FulfilledRequests)
	assert.Len(t, stats.DistrictStats, 2)
}

func TestAPI_PublicRequest(t *testing.T) {
	fx := createTestAPI(t)
	w := fx.world

	body := map[string]any{
		"ic_number": "880808-10-1234",
		"address":   "Lorong Kulit",
		"district":  w.Penang.Name,
		"items":     []map[string]any{{"food_item_id": w.Rice.ID}},
	}
	rec, env := fx.do(t, http.MethodPost, "/public/requests", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.PublicRequestResponse](t, env)
	assert.NotZero(t, created.RequestID)
	assert.Equal(t, "Pending", created.Status)

	rec, env = fx.do(t, http.MethodGet, "/public/track/"+created.TrackingNumber, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tracked := decode[handler.TrackingResponse](t, env)
	assert.Equal(t, []handler.TrackedItemResponse{{Name: "Rice", Quantity: 1}}, tracked.Items)
	assert.Nil(t, tracked.FoodBank)

	delete(body, "ic_number")
	rec, env = fx.do(t, http.MethodPost, "/public/requests", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NATIONAL_ID_REQUIRED", env.Error.Code)

	rec, env = fx.do(t, http.MethodGet, "/public/track/B40-XYZ", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REQUEST_NOT_FOUND", env.Error.Code)
}

func TestAPI_Authentication(t *testing.T) {
	fx := createTestAPI(t)
	ctx := context.Background()

	retired := &entity.Actor{Username: "retired", Role: entity.RoleRecipient, Active: false, CreatedAt: testutil.Now}
	require.NoError(t, fx.world.Store.Repositories().Actors().Create(ctx, retired))

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{name: "missing header", wantCode: "MISSING_TOKEN"},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz", wantCode: "INVALID_TOKEN"},
		{name: "garbage token", header: "Bearer not.a.jwt", wantCode: "INVALID_TOKEN"},
		{name: "inactive actor", header: "Bearer " + fx.token(t, retired), wantCode: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			fx.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}

	rec, env := fx.do(t, http.MethodGet, "/api/v1/users/me", nil, fx.world.Bob)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[handler.ActorResponse](t, env)
	assert.Equal(t, "bob", me.Username)
	assert.Equal(t, "recipient", me.Role)

	rec, _ = fx.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", fx.world.Alice.ID), nil, fx.world.Bob)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_Inventory(t *testing.T) {
	fx := createTestAPI(t)
	w := fx.world
	inventoryPath := fmt.Sprintf("/api/v1/foodbanks/%d/inventory", w.KLFoodBank.ID)

	for _, q := range []int{30, 20} {
		rec, _ := fx.do(t, http.MethodPost, inventoryPath, map[string]any{"food_item_id": w.Rice.ID, "quantity": q}, w.KLOperator)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec, env := fx.do(t, http.MethodPut, fmt.Sprintf("%s/%d", inventoryPath, w.Rice.ID), map[string]any{"quantity": 45}, w.KLOperator)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 45, decode[handler.InventoryResponse](t, env).Quantity)

	rec, env = fx.do(t, http.MethodPut, fmt.Sprintf("%s/%d", inventoryPath, w.Oil.ID), map[string]any{"quantity": 5}, w.KLOperator)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INVENTORY_RECORD_NOT_FOUND", env.Error.Code)

	rec, env = fx.do(t, http.MethodPut, fmt.Sprintf("%s/%d", inventoryPath, w.Rice.ID), map[string]any{}, w.KLOperator)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, _ = fx.do(t, http.MethodPost, inventoryPath, map[string]any{"food_item_id": w.Rice.ID, "quantity": 1}, w.PGOperator)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	detailPath := fmt.Sprintf("/api/v1/foodbanks/%d", w.KLFoodBank.ID)
	rec, env = fx.do(t, http.MethodGet, detailPath, nil, w.Alice)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[handler.FoodBankDetailResponse](t, env)
	require.Len(t, detail.InventoryItems, 1)
	assert.Equal(t, 45, detail.InventoryItems[0].Quantity)
	assert.Equal(t, w.KLOperator.ID, detail.AdminID)

	rec, env = fx.do(t, http.MethodGet, detailPath, nil, w.PGOperator)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[handler.FoodBankDetailResponse](t, env).InventoryItems)

	rec, env = fx.do(t, http.MethodGet, "/api/v1/foodbanks/abc", nil, w.Admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestAPI_Catalog(t *testing.T) {
	fx := createTestAPI(t)
	w := fx.world

	rec, env := fx.do(t, http.MethodPost, "/api/v1/food-items", map[string]any{"name": "Sardines", "icon": "🐟", "category": "Protein"}, w.Admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Sardines", decode[handler.FoodItemResponse](t, env).Name)

	rec, env = fx.do(t, http.MethodPost, "/api/v1/food-items", map[string]any{"name": "Sardines"}, w.Admin)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "FOOD_ITEM_ALREADY_EXISTS", env.Error.Code)

	rec, _ = fx.do(t, http.MethodPost, "/api/v1/food-items", map[string]any{"name": "Sugar"}, w.Alice)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = fx.do(t, http.MethodPost, "/api/v1/districts", map[string]any{"name": "Klang", "geojson": "not-geojson"}, w.Admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_BOUNDARY", env.Error.Code)

	rec, env = fx.do(t, http.MethodPost, "/api/v1/foodbanks", map[string]any{
		"name":     "Cheras Pantry",
		"location": "Jalan Cheras",
		"district": w.KualaLumpur.Name,
		"admin_id": w.Unassigned.ID,
	}, w.Admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, w.Unassigned.ID, decode[handler.FoodBankResponse](t, env).AdminID)

	rec, env = fx.do(t, http.MethodGet, "/public/foodbanks?district="+"Penang", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]handler.FoodBankResponse](t, env), 1)

	rec, env = fx.do(t, http.MethodGet, "/public/food-items", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]handler.FoodItemResponse](t, env), 3)

	rec, env = fx.do(t, http.MethodGet, fmt.Sprintf("/public/districts/%d", w.Penang.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Penang", decode[handler.DistrictResponse](t, env).Name)
}

func TestAPI_Envelope(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "req-123", env.Meta.RequestID)

	rec, env = fx.do(t, http.MethodGet, "/nowhere", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)

	rec, env = fx.do(t, http.MethodPost, "/api/v1/requests", "{not json", fx.world.Alice)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)

	rec, env = fx.do(t, http.MethodPost, "/api/v1/requests", map[string]any{"district": "Penang"}, fx.world.Alice)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.NotEmpty(t, env.Error.Details)
}

func TestAPI_MalformedInput(t *testing.T) {
	fx := createTestAPI(t)
	w := fx.world

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		as       *entity.Actor
		wantCode string
	}{
		{name: "zero request id", method: http.MethodGet, path: "/api/v1/requests/0", as: w.Admin, wantCode: "INVALID_ID"},
		{name: "negative request id", method: http.MethodPut, path: "/api/v1/requests/-3", body: map[string]any{"status": "Approved"}, as: w.Admin, wantCode: "INVALID_ID"},
		{name: "non numeric user id", method: http.MethodGet, path: "/api/v1/users/x", as: w.Admin, wantCode: "INVALID_ID"},
		{name: "non numeric item id", method: http.MethodPut, path: fmt.Sprintf("/api/v1/foodbanks/%d/inventory/abc", w.KLFoodBank.ID), body: map[string]any{"quantity": 1}, as: w.KLOperator, wantCode: "INVALID_ID"},
		{name: "public district id", method: http.MethodGet, path: "/public/districts/abc", wantCode: "INVALID_ID"},
		{name: "public body not json", method: http.MethodPost, path: "/public/requests", body: "{not json", wantCode: "INVALID_INPUT"},
		{name: "food item without name", method: http.MethodPost, path: "/api/v1/food-items", body: map[string]any{}, as: w.Admin, wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := fx.do(t, tt.method, tt.path, tt.body, tt.as)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error, rec.Body.String())
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}
