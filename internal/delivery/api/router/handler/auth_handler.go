package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/infra/i18n"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	Messages *i18n.Messages
	Logger   *slog.Logger
}

// AuthHandler serves signup, login and account verification.
type AuthHandler struct {
	authUC   usecase.AuthUsecase
	messages *i18n.Messages
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:   params.AuthUC,
		messages: params.Messages,
		logger:   params.Logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SignupRequest struct {
	Username    string `json:"username" validate:"required,min=5,max=15"`
	Password    string `json:"password" validate:"required,password"`
	Email       string `json:"email" validate:"required,email"`
	MobilePhone string `json:"mobilePhone" validate:"omitempty,mobile"`
}

// EmailQuery carries the email query parameter of verification endpoints.
type EmailQuery struct {
	Email string `json:"email" validate:"required"`
}

// OTPQuery carries the email and OTP query parameters from a mailed link.
type OTPQuery struct {
	Email string `json:"email" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithMessage(err, "login")
	}

	return response.Success(c, http.StatusOK, LoginResponse{Token: out.Token})
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	key, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		MobilePhone: req.MobilePhone,
	})
	if err != nil {
		return errors.WithMessage(err, "signup")
	}

	return h.message(c, key)
}

// VerifyAccount handles POST /auth/verify-account?email=&token=
func (h *AuthHandler) VerifyAccount(c echo.Context) error {
	query := OTPQuery{Email: c.QueryParam("email"), Token: c.QueryParam("token")}
	if err := c.Validate(&query); err != nil {
		return err
	}

	key, err := h.authUC.VerifyAccount(c.Request().Context(), query.Email, query.Token)
	if err != nil {
		return errors.WithMessage(err, "verify account")
	}

	return h.message(c, key)
}

// ResendVerification handles POST /auth/resend-verification?email=
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	query := EmailQuery{Email: c.QueryParam("email")}
	if err := c.Validate(&query); err != nil {
		return err
	}

	key, err := h.authUC.ResendVerification(c.Request().Context(), query.Email)
	if err != nil {
		return errors.WithMessage(err, "resend verification")
	}

	return h.message(c, key)
}

func (h *AuthHandler) message(c echo.Context, key string) error {
	return response.Message(c, h.messages.Localize(deliverycontext.GetLocale(c), key, nil))
}
