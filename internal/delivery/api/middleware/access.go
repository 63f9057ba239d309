package middleware

import (
	"net/http"
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Requirement is what a matching rule demands of the caller.
type Requirement int

const (
	RequirePublic Requirement = iota
	RequireAuthenticated
	RequireAuthority
)

// AnyMethod matches every HTTP method.
const AnyMethod = "*"

// AccessRule pairs a method and path pattern with a requirement. A pattern
// ending in "/**" matches the prefix and everything below it; any other
// pattern must match the path exactly.
type AccessRule struct {
	Method    string
	Pattern   string
	Require   Requirement
	Authority entity.Authority
}

// Matches reports whether the rule applies to method and path.
func (r AccessRule) Matches(method, path string) bool {
	if r.Method != AnyMethod && !strings.EqualFold(r.Method, method) {
		return false
	}

	if prefix, ok := strings.CutSuffix(r.Pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	return path == r.Pattern
}

// Decision is the outcome of evaluating the rules for one request.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

func public(method string, patterns ...string) []AccessRule {
	rules := make([]AccessRule, 0, len(patterns))
	for _, pattern := range patterns {
		rules = append(rules, AccessRule{Method: method, Pattern: pattern, Require: RequirePublic})
	}

	return rules
}

// DefaultAccessRules is the route policy of the API, evaluated top to bottom.
func DefaultAccessRules() []AccessRule {
	var rules []AccessRule

	rules = append(rules, public(AnyMethod, "/swagger-ui/**", "/v3/api-docs/**", "/swagger-ui.html", "/profile/dashboard")...)
	rules = append(rules, public(http.MethodGet, "/health")...)
	rules = append(rules, public(http.MethodPost,
		"/auth/signup", "/auth/login", "/auth/verify-account", "/auth/resend-verification",
		"/password/request-reset", "/password/reset",
	)...)
	rules = append(rules, public(http.MethodGet, "/products/**")...)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rules = append(rules, AccessRule{
			Method:    method,
			Pattern:   "/products/**",
			Require:   RequireAuthority,
			Authority: entity.AuthorityAdmin,
		})
	}

	return append(rules, AccessRule{Method: AnyMethod, Pattern: "/**", Require: RequireAuthenticated})
}

// AccessPolicy applies the first matching rule. Requests no rule matches
// require authentication.
type AccessPolicy struct {
	rules []AccessRule
}

func NewAccessPolicy(rules []AccessRule) *AccessPolicy {
	return &AccessPolicy{rules: rules}
}

// NewDefaultAccessPolicy builds the policy from DefaultAccessRules.
func NewDefaultAccessPolicy() *AccessPolicy {
	return NewAccessPolicy(DefaultAccessRules())
}

// Decide evaluates the rules for a caller; authorities is empty for anonymous callers.
func (p *AccessPolicy) Decide(method, path string, authenticated bool, authorities entity.Authorities) Decision {
	rule := AccessRule{Require: RequireAuthenticated}
	for _, candidate := range p.rules {
		if candidate.Matches(method, path) {
			rule = candidate

			break
		}
	}

	switch rule.Require {
	case RequirePublic:
		return Allow
	case RequireAuthority:
		if authenticated && authorities.Has(rule.Authority) {
			return Allow
		}

		return DenyForbidden
	default:
		if authenticated {
			return Allow
		}

		return DenyUnauthenticated
	}
}

// Enforce must run after AuthMiddleware.Authenticate.
func (p *AccessPolicy) Enforce(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := deliverycontext.GetIdentity(c)
		decision := p.Decide(c.Request().Method, c.Request().URL.Path, user != nil, deliverycontext.GetAuthorities(c))

		switch decision {
		case DenyUnauthenticated:
			return domainerrors.ErrUnauthorized
		case DenyForbidden:
			return domainerrors.ErrAccessDenied
		default:
			return next(c)
		}
	}
}
