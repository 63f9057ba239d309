package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/config"
	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/router/handler"
	"catalog/internal/delivery/api/validator"
	"catalog/internal/domain/entity"
	"catalog/internal/infra/i18n"
	mockRepository "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	mockUsecase "catalog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerMocks struct {
	tokens   *mockService.MockTokenService
	users    *mockRepository.MockUserRepository
	auth     *mockUsecase.MockAuthUsecase
	password *mockUsecase.MockPasswordResetUsecase
	products *mockUsecase.MockProductUsecase
}

func newTestServer(t *testing.T) (*echo.Echo, *routerMocks) {
	t.Helper()
	cfg := &config.Config{}
	cfg.I18n.DefaultLocale = "en"
	messages, err := i18n.New(cfg)
	require.NoError(t, err)

	m := &routerMocks{
		tokens:   mockService.NewMockTokenService(t),
		users:    mockRepository.NewMockUserRepository(t),
		auth:     mockUsecase.NewMockAuthUsecase(t),
		password: mockUsecase.NewMockPasswordResetUsecase(t),
		products: mockUsecase.NewMockProductUsecase(t),
	}

	logger := slog.Default()
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger, messages).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: m.auth, Messages: messages, Logger: logger,
		}),
		PasswordHandler: handler.NewPasswordHandler(handler.PasswordHandlerParams{
			PasswordResetUC: m.password, Messages: messages, Logger: logger,
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: m.products, Messages: messages, Logger: logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: m.tokens, UserRepo: m.users, Logger: logger,
		}),
		AccessPolicy: middleware.NewDefaultAccessPolicy(),
	}).RegisterRoutes(e)

	return e, m
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func (m *routerMocks) signIn(token string, user *entity.User) {
	m.tokens.EXPECT().Verify(token).Return(user.Username)
	m.users.EXPECT().FindByUsername(mock.Anything, user.Username).Return(user, nil)
}

const productBody = `{"code":"AB12","name":"Lamp","price":12.5,"description":"Desk lamp"}`

func TestRoutes_AnonymousCanBrowseProducts(t *testing.T) {
	e, m := newTestServer(t)
	page := entity.NewPage([]*entity.Product{{ID: 1, Code: "AB12", Name: "Lamp"}},
		entity.PageRequest{Page: 0, Size: 10}, 1)
	m.products.EXPECT().List(mock.Anything, mock.Anything).Return(page, nil)

	rec := serve(e, http.MethodGet, "/products/paginated", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"AB12"`)
}

func TestRoutes_UserCannotCreateProduct(t *testing.T) {
	e, m := newTestServer(t)
	m.signIn("user-token", &entity.User{Username: "alice", Role: entity.RoleUser, Enabled: true})

	rec := serve(e, http.MethodPost, "/products/create", "user-token", productBody)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied")
}

func TestRoutes_AdminCreatesProduct(t *testing.T) {
	e, m := newTestServer(t)
	m.signIn("admin-token", &entity.User{Username: "admin", Role: entity.RoleAdmin, Enabled: true})
	m.products.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(&entity.Product{ID: 7}, nil)

	rec := serve(e, http.MethodPost, "/products/create", "admin-token", productBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product created successfully")
}

func TestRoutes_AnonymousProtectedPath(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, http.MethodGet, "/orders", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestRoutes_InvalidTokenIsAnonymous(t *testing.T) {
	e, m := newTestServer(t)
	m.tokens.EXPECT().Verify("expired").Return("")

	rec := serve(e, http.MethodDelete, "/products/delete?product=1", "expired", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoutes_LoginIsPublic(t *testing.T) {
	e, m := newTestServer(t)
	m.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	rec := serve(e, http.MethodPost, "/auth/login", "", `{"username":"alice","password":"Secret#123"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
