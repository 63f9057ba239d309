// Package handler contains the echo handlers of the REST API.
package handler

import (
	"net/http"
	"strconv"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		reason := "invalid body"
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				reason = msg
			}
		}

		return domainerrors.ErrMalformedRequest.WithParam("reason", reason)
	}

	return c.Validate(req)
}

// int64Query parses a required integer query parameter.
func int64Query(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, fieldError(name, "validation.required")
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fieldError(name, "validation.number")
	}

	return value, nil
}

// intQueryOrDefault parses an optional integer query parameter.
func intQueryOrDefault(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fieldError(name, "validation.number")
	}

	return value, nil
}

func fieldError(field, messageKey string) error {
	return domainerrors.NewValidationError([]domainerrors.FieldViolation{{
		Field:      field,
		MessageKey: messageKey,
		Params:     map[string]string{"field": field},
	}})
}
