package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	mockRepository "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	alice := &entity.User{Username: "alice", Role: entity.RoleAdmin, Enabled: true}

	tests := []struct {
		name       string
		header     string
		setupMocks func(tokens *mockService.MockTokenService, users *mockRepository.MockUserRepository)
		wantUser   *entity.User
	}{
		{
			name:       "no header",
			setupMocks: func(*mockService.MockTokenService, *mockRepository.MockUserRepository) {},
		},
		{
			name:       "not a bearer token",
			header:     "Basic YWxpY2U6c2VjcmV0",
			setupMocks: func(*mockService.MockTokenService, *mockRepository.MockUserRepository) {},
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setupMocks: func(tokens *mockService.MockTokenService, _ *mockRepository.MockUserRepository) {
				tokens.EXPECT().Verify("broken").Return("")
			},
		},
		{
			name:   "subject no longer exists",
			header: "Bearer stale",
			setupMocks: func(tokens *mockService.MockTokenService, users *mockRepository.MockUserRepository) {
				tokens.EXPECT().Verify("stale").Return("ghost")
				users.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, errors.New("not found"))
			},
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMocks: func(tokens *mockService.MockTokenService, users *mockRepository.MockUserRepository) {
				tokens.EXPECT().Verify("good").Return("alice")
				users.EXPECT().FindByUsername(mock.Anything, "alice").Return(alice, nil)
			},
			wantUser: alice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			users := mockRepository.NewMockUserRepository(t)
			tt.setupMocks(tokens, users)

			m := NewAuthMiddleware(AuthMiddlewareParams{
				TokenService: tokens,
				UserRepo:     users,
				Logger:       slog.Default(),
			})

			req := httptest.NewRequest(http.MethodGet, "/products/paginated", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			var seen *entity.User
			err := m.Authenticate(func(c echo.Context) error {
				seen = deliverycontext.GetIdentity(c)

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, seen)
			if tt.wantUser != nil {
				assert.True(t, deliverycontext.GetAuthorities(c).Has(entity.AuthorityAdmin))
				assert.Equal(t, tt.wantUser, deliverycontext.IdentityFromContext(c.Request().Context()))
			}
		})
	}
}
