package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/i18n"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestErrorMiddleware(t *testing.T) *ErrorMiddleware {
	t.Helper()
	cfg := &config.Config{}
	cfg.I18n.DefaultLocale = "en"

	messages, err := i18n.New(cfg)
	require.NoError(t, err)

	return NewErrorMiddleware(slog.Default(), messages)
}

func handle(t *testing.T, m *ErrorMiddleware, err error, acceptLanguage string) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetLocale(c, acceptLanguage)

	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := newTestErrorMiddleware(t)

	tests := []struct {
		name           string
		err            error
		acceptLanguage string
		wantStatus     int
		wantCode       string
		wantMessage    string
		wantDetails    map[string]string
	}{
		{
			name:        "wrapped app error with params",
			err:         errors.WithMessage(domainerrors.ErrProductNotFound.WithParam("id", "42"), "find product"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "PRODUCT_NOT_FOUND",
			wantMessage: "Product with id 42 not found",
		},
		{
			name:           "localized access denied",
			err:            domainerrors.ErrAccessDenied,
			acceptLanguage: "zh-TW",
			wantStatus:     http.StatusForbidden,
			wantCode:       "ACCESS_DENIED",
			wantMessage:    "存取被拒：您沒有權限存取此資源",
		},
		{
			name:        "unauthorized",
			err:         domainerrors.ErrUnauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "UNAUTHORIZED",
			wantMessage: "Full authentication is required to access this resource",
		},
		{
			name: "field violations",
			err: domainerrors.NewValidationError([]domainerrors.FieldViolation{
				{Field: "email", MessageKey: "validation.email", Params: map[string]string{"field": "email"}},
				{Field: "username", MessageKey: "validation.required", Params: map[string]string{"field": "username"}},
			}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Request validation failed",
			wantDetails: map[string]string{
				"email":    "email must be a well-formed email address",
				"username": "username must not be blank",
			},
		},
		{
			name:        "internal errors hide their cause",
			err:         errors.Wrap(domainerrors.ErrLoginFailed, "signing key missing"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "LOGIN_FAILED",
			wantMessage: "Error occurred during login",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "An internal error occurred, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handle(t, m, tt.err, tt.acceptLanguage)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "signing key missing")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := newTestErrorMiddleware(t)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(domainerrors.ErrInternal, c)

	assert.Equal(t, "done", rec.Body.String())
}
