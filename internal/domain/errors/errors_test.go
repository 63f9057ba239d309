package errors

import (
	"net/http"
	"testing"

	"catalog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithParamKeepsIdentity(t *testing.T) {
	err := ErrUserNotFound.WithParam("email", "a@x.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrUserAlreadyVerified)
	assert.Equal(t, "a@x.com", err.Params()["email"])
	assert.Nil(t, ErrUserNotFound.Params(), "sentinel must not be mutated")
}

func TestBaseError_WrappedStillMatches(t *testing.T) {
	wrapped := errors.Wrap(ErrInvalidOtp, "verify account")

	assert.ErrorIs(t, wrapped, ErrInvalidOtp)

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, KindInvalidOtp, appErr.Kind())
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "auth.invalid_otp", appErr.MessageKey())
}

func TestStatusByKind(t *testing.T) {
	tests := []struct {
		err  *BaseError
		want int
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrUserNotEnabled, http.StatusBadRequest},
		{ErrUsernameAlreadyExists, http.StatusBadRequest},
		{ErrEmailAlreadyExists, http.StatusBadRequest},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrUserAlreadyVerified, http.StatusBadRequest},
		{ErrInvalidOtp, http.StatusUnauthorized},
		{ErrMissingArguments, http.StatusBadRequest},
		{ErrPasswordsDoNotMatch, http.StatusConflict},
		{ErrAccessDenied, http.StatusForbidden},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrInternal, http.StatusInternalServerError},
		{ErrProductsEmpty, http.StatusNotFound},
		{ErrProductCodeAlreadyExists, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}

func TestNewValidationError(t *testing.T) {
	violations := []FieldViolation{{Field: "username", MessageKey: "validation.min", Params: map[string]string{"param": "5"}}}

	err := NewValidationError(violations)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, violations, err.Details())
	assert.Nil(t, ErrValidation.Details())
}

func TestWithMessageKey(t *testing.T) {
	err := ErrUserNotFound.WithMessageKey("user.with_username_not_found", "User not found")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, "user.with_username_not_found", err.MessageKey())
	assert.Equal(t, "user.with_email_not_found", ErrUserNotFound.MessageKey())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to find user")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, err.Kind())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "failed to find user")
	assert.Equal(t, "Unknown", Kind(999).String())
}
