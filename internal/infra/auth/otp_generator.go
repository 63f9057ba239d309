package auth

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
)

var otpSpace = big.NewInt(1_000_000)

type otpGenerator struct {
	random io.Reader
	now    func() time.Time
}

// NewOTPGenerator draws codes from crypto/rand.
func NewOTPGenerator() service.OTPService {
	return &otpGenerator{random: rand.Reader, now: time.Now}
}

// Generate returns a code in [000000, 999999] stamped with the current time.
func (g *otpGenerator) Generate() (*entity.OneTimePassword, error) {
	n, err := rand.Int(g.random, otpSpace)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw otp")
	}

	return entity.NewOneTimePassword(fmt.Sprintf("%0*d", entity.OTPLength, n.Int64()), g.now())
}

// IsValid is true strictly before GeneratedAt + 5 minutes.
func (g *otpGenerator) IsValid(otp *entity.OneTimePassword) bool {
	if otp == nil {
		return false
	}

	return otp.IsValidAt(g.now())
}
