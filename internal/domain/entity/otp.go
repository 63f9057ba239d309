package entity

import (
	"errors"
	"time"
)

const (
	// OTPLength is the fixed width of a one-time password code.
	OTPLength = 6
	// OTPValidity is how long a one-time password stays usable after generation.
	OTPValidity = 5 * time.Minute
)

var (
	ErrEmptyOTPCode       = errors.New("otp code must not be empty")
	ErrZeroOTPGeneratedAt = errors.New("otp generation time must not be zero")
)

// OneTimePassword is a zero-padded numeric code and the instant it was generated.
type OneTimePassword struct {
	Code        string
	GeneratedAt time.Time
}

// NewOneTimePassword builds an OTP with both fields present.
func NewOneTimePassword(code string, generatedAt time.Time) (*OneTimePassword, error) {
	if code == "" {
		return nil, ErrEmptyOTPCode
	}
	if generatedAt.IsZero() {
		return nil, ErrZeroOTPGeneratedAt
	}

	return &OneTimePassword{Code: code, GeneratedAt: generatedAt}, nil
}

// ExpiresAt is the first instant at which the OTP is no longer valid.
func (o *OneTimePassword) ExpiresAt() time.Time {
	return o.GeneratedAt.Add(OTPValidity)
}

// IsValidAt reports whether the OTP is still usable at now.
func (o *OneTimePassword) IsValidAt(now time.Time) bool {
	return now.Before(o.ExpiresAt())
}
