package handler

import (
	"log/slog"

	"catalog/internal/delivery/api/response"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/infra/i18n"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PasswordHandlerParams holds dependencies for PasswordHandler, injected by Fx.
type PasswordHandlerParams struct {
	fx.In

	PasswordResetUC usecase.PasswordResetUsecase
	Messages        *i18n.Messages
	Logger          *slog.Logger
}

// PasswordHandler serves the password reset flow.
type PasswordHandler struct {
	passwordResetUC usecase.PasswordResetUsecase
	messages        *i18n.Messages
	logger          *slog.Logger
}

func NewPasswordHandler(params PasswordHandlerParams) *PasswordHandler {
	return &PasswordHandler{
		passwordResetUC: params.PasswordResetUC,
		messages:        params.Messages,
		logger:          params.Logger,
	}
}

type RequestResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest leaves presence checks to the use case, which reports
// every missing argument as one error.
type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"omitempty,password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RequestReset handles POST /password/request-reset
func (h *PasswordHandler) RequestReset(c echo.Context) error {
	var req RequestResetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	key, err := h.passwordResetUC.RequestReset(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithMessage(err, "request password reset")
	}

	return response.Message(c, h.messages.Localize(deliverycontext.GetLocale(c), key, nil))
}

// Reset handles POST /password/reset?email=&token=
func (h *PasswordHandler) Reset(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	key, err := h.passwordResetUC.Reset(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:           c.QueryParam("email"),
		Token:           c.QueryParam("token"),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithMessage(err, "reset password")
	}

	return response.Message(c, h.messages.Localize(deliverycontext.GetLocale(c), key, nil))
}
