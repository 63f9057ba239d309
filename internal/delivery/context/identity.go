package context

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity holds the authenticated *entity.User.
	KeyIdentity ContextKey = "identity"

	// KeyAuthorities holds the entity.Authorities derived from the identity's role.
	KeyAuthorities ContextKey = "authorities"

	// KeyLocale holds the caller's Accept-Language header.
	KeyLocale ContextKey = "locale"
)

// SetIdentity attaches an authenticated user and its authorities to the request.
func SetIdentity(c echo.Context, user *entity.User) {
	c.Set(string(KeyIdentity), user)
	c.Set(string(KeyAuthorities), user.Authorities())

	ctx := context.WithValue(c.Request().Context(), KeyIdentity, user)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentity returns the authenticated user, or nil for anonymous requests.
func GetIdentity(c echo.Context) *entity.User {
	user, _ := c.Get(string(KeyIdentity)).(*entity.User)

	return user
}

// GetAuthorities returns the caller's authorities; anonymous callers have none.
func GetAuthorities(c echo.Context) entity.Authorities {
	authorities, _ := c.Get(string(KeyAuthorities)).(entity.Authorities)

	return authorities
}

// IdentityFromContext returns the authenticated user carried by ctx, or nil.
func IdentityFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(KeyIdentity).(*entity.User)

	return user
}

// GetLocale returns the Accept-Language header value captured for this request.
func GetLocale(c echo.Context) string {
	if locale, ok := c.Get(string(KeyLocale)).(string); ok {
		return locale
	}

	return c.Request().Header.Get(HeaderAcceptLanguage)
}

// SetLocale records the caller's preferred language tags.
func SetLocale(c echo.Context, locale string) {
	c.Set(string(KeyLocale), locale)
}
