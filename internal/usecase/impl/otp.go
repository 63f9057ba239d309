// Package impl contains the implementation of the application's business logic.
package impl

import (
	"crypto/subtle"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"
)

// otpAccepted reports whether supplied equals the stored code and the stored
// code is still fresh. A nil stored OTP never matches.
func otpAccepted(otpService service.OTPService, stored *entity.OneTimePassword, supplied string) bool {
	if stored == nil {
		return false
	}

	matches := subtle.ConstantTimeCompare([]byte(stored.Code), []byte(supplied)) == 1

	return matches && otpService.IsValid(stored)
}
