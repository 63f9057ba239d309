package usecase

import "context"

// ResetPasswordInput carries the OTP from the reset email and the new password.
type ResetPasswordInput struct {
	Email           string
	Token           string
	Password        string
	ConfirmPassword string
}

// PasswordResetUsecase issues reset codes and applies new passwords.
type PasswordResetUsecase interface {
	RequestReset(ctx context.Context, email string) (string, error)
	Reset(ctx context.Context, input *ResetPasswordInput) (string, error)
}
