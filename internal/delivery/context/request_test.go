package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRequestScope(context.Background(), "req-9", base)
	logger.Info("hello")

	assert.Equal(t, "req-9", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, base))
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
}

func TestScopeDefaults(t *testing.T) {
	fallback := slog.Default()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestID(c))
	assert.Nil(t, GetIdentity(c))
	assert.Empty(t, GetAuthorities(c))
}

func TestSetIdentity(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	user := &entity.User{Username: "alice", Role: entity.RoleUser}

	SetIdentity(c, user)

	assert.Same(t, user, GetIdentity(c))
	assert.Same(t, user, IdentityFromContext(c.Request().Context()))
	assert.True(t, GetAuthorities(c).Has(entity.AuthorityUser))
	assert.False(t, GetAuthorities(c).Has(entity.AuthorityAdmin))
}

func TestGetLocale(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAcceptLanguage, "zh-TW")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "zh-TW", GetLocale(c))

	SetLocale(c, "en")
	assert.Equal(t, "en", GetLocale(c))
}
