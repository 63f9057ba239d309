package middleware

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/i18n"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger   *slog.Logger
	messages *i18n.Messages
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, messages *i18n.Messages) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:   logger,
		messages: messages,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	locale := deliverycontext.GetLocale(c)
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}

		message := m.localize(locale, appErr.MessageKey(), appErr.Params(), appErr.Message())
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), message, m.details(locale, appErr.Details()))

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	message := m.localize(locale, domainerrors.ErrInternal.MessageKey(), nil, domainerrors.ErrInternal.Message())
	_ = response.InternalServerError(c, domainerrors.ErrInternal.ErrorCode(), message)
}

func (m *ErrorMiddleware) localize(locale, key string, params map[string]string, fallback string) string {
	if key == "" || !m.messages.Has(key) {
		return fallback
	}

	return m.messages.Localize(locale, key, params)
}

// details renders field violations as {field: message}; other details pass through.
func (m *ErrorMiddleware) details(locale string, details any) any {
	violations, ok := details.([]domainerrors.FieldViolation)
	if !ok {
		return details
	}

	rendered := make(map[string]string, len(violations))
	for _, v := range violations {
		if _, seen := rendered[v.Field]; seen {
			continue
		}
		rendered[v.Field] = m.localize(locale, v.MessageKey, v.Params, v.MessageKey)
	}

	return rendered
}
