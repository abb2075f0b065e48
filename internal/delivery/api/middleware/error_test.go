package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodaid/internal/delivery/api/response"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
		wantLogged  bool
	}{
		{
			name:        "forbidden app error",
			err:         domainerrors.ErrForbidden.WithDetails("assign_request"),
			wantStatus:  http.StatusForbidden,
			wantCode:    "FORBIDDEN",
			wantDetails: "assign_request",
		},
		{
			name:       "internal app error hides details",
			err:        errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails("update request"), "usecase"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TRANSACTION_FAILED",
			wantLogged: true,
		},
		{
			name:       "echo error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPut, "/api/v1/requests/1", nil), rec)

			m.HandleHTTPError(tt.err, c)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, tt.wantLogged, buf.Len() > 0)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
