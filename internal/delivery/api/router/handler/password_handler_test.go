package handler

import (
	"net/http"
	"testing"

	domainerrors "catalog/internal/domain/errors"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPasswordHandler(t *testing.T) (*PasswordHandler, *mockUsecase.MockPasswordResetUsecase) {
	t.Helper()
	resetUC := mockUsecase.NewMockPasswordResetUsecase(t)

	return NewPasswordHandler(PasswordHandlerParams{
		PasswordResetUC: resetUC,
		Messages:        newTestMessages(t),
		Logger:          testLogger(),
	}), resetUC
}

func TestPasswordHandler_RequestReset(t *testing.T) {
	h, resetUC := newTestPasswordHandler(t)
	resetUC.EXPECT().RequestReset(mock.Anything, "alice@example.com").Return(usecase.MsgPasswordResetRequest, nil)

	c, rec := newTestContext(http.MethodPost, "/password/request-reset", `{"email":"alice@example.com"}`)

	require.NoError(t, h.RequestReset(c))
	assert.Contains(t, rec.Body.String(), "A password reset code has been sent")
}

func TestPasswordHandler_RequestReset_InvalidEmail(t *testing.T) {
	h, _ := newTestPasswordHandler(t)
	c, _ := newTestContext(http.MethodPost, "/password/request-reset", `{"email":"nope"}`)

	assert.ErrorIs(t, h.RequestReset(c), domainerrors.ErrValidation)
}

func TestPasswordHandler_Reset(t *testing.T) {
	h, resetUC := newTestPasswordHandler(t)
	resetUC.EXPECT().Reset(mock.Anything, &usecase.ResetPasswordInput{
		Email:           "alice@example.com",
		Token:           "654321",
		Password:        "Newer#456",
		ConfirmPassword: "Newer#456",
	}).Return(usecase.MsgPasswordResetComplete, nil)

	c, rec := newTestContext(http.MethodPost, "/password/reset?email=alice@example.com&token=654321",
		`{"password":"Newer#456","confirmPassword":"Newer#456"}`)

	require.NoError(t, h.Reset(c))
	assert.Contains(t, rec.Body.String(), "Password reset successfully")
}

func TestPasswordHandler_Reset_MissingArgumentsReachUsecase(t *testing.T) {
	h, resetUC := newTestPasswordHandler(t)
	resetUC.EXPECT().Reset(mock.Anything, mock.Anything).Return("", domainerrors.ErrMissingArguments)

	c, _ := newTestContext(http.MethodPost, "/password/reset?email=alice@example.com", `{}`)

	assert.ErrorIs(t, h.Reset(c), domainerrors.ErrMissingArguments)
}
