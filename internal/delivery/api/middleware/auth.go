package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// AuthMiddleware resolves the bearer token into an identity. It never rejects
// a request itself; AccessPolicy decides what anonymous callers may reach.
type AuthMiddleware struct {
	tokenService service.TokenService
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// Authenticate attaches the caller's identity and authorities when the request
// carries a valid bearer token for an existing user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return next(c)
		}

		subject := m.tokenService.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
		if subject == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		user, err := m.userRepo.FindByUsername(ctx, subject)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token subject could not be resolved",
				slog.String("username", subject),
				slog.Any("error", err),
			)

			return next(c)
		}

		deliverycontext.SetIdentity(c, user)

		return next(c)
	}
}
