package service

import "catalog/internal/domain/entity"

// OTPService generates one-time passwords and checks their freshness.
type OTPService interface {
	// Generate returns a uniformly random zero-padded 6-digit code stamped with the current time.
	Generate() (*entity.OneTimePassword, error)

	// IsValid reports whether otp is still inside its validity window.
	IsValid(otp *entity.OneTimePassword) bool
}
