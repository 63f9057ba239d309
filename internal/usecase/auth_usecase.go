// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// Message keys returned by successful auth and password reset operations.
const (
	MsgSignedUp              = "user.successfully_signed_up"
	MsgVerified              = "user.successfully_verified"
	MsgVerificationResent    = "user.verification_email_resent"
	MsgPasswordResetRequest  = "password_reset.requested"
	MsgPasswordResetComplete = "password_reset.successful"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username    string
	Password    string
	Email       string
	MobilePhone string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the bearer token issued on a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the account lifecycle: signup, OTP verification and login.
// Operations that only report success return the message key to show the caller.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Signup(ctx context.Context, input *SignupInput) (string, error)
	VerifyAccount(ctx context.Context, email, otp string) (string, error)
	ResendVerification(ctx context.Context, email string) (string, error)
}
