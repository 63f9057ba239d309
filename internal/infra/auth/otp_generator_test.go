package auth

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"catalog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func TestOTPGenerator_Generate(t *testing.T) {
	gen := NewOTPGenerator()

	for range 200 {
		otp, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, otp.Code)
		assert.False(t, otp.GeneratedAt.IsZero())
	}
}

func TestOTPGenerator_ZeroPadded(t *testing.T) {
	// rand.Int on an all-zero stream yields 0.
	gen := &otpGenerator{random: bytes.NewReader(make([]byte, 64)), now: time.Now}

	otp, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "000000", otp.Code)
}

func TestOTPGenerator_ExhaustedRandom(t *testing.T) {
	gen := &otpGenerator{random: bytes.NewReader(nil), now: time.Now}

	_, err := gen.Generate()
	assert.Error(t, err)
}

func TestOTPGenerator_IsValid(t *testing.T) {
	generated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: generated}
	gen := &otpGenerator{now: clock.Now}
	otp := &entity.OneTimePassword{Code: "111111", GeneratedAt: generated}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{name: "fresh", elapsed: 0, want: true},
		{name: "four minutes", elapsed: 4 * time.Minute, want: true},
		{name: "just before window end", elapsed: 5*time.Minute - time.Millisecond, want: true},
		{name: "exactly five minutes", elapsed: 5 * time.Minute, want: false},
		{name: "six minutes", elapsed: 6 * time.Minute, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.t = generated.Add(tt.elapsed)
			assert.Equal(t, tt.want, gen.IsValid(otp))
		})
	}

	assert.False(t, gen.IsValid(nil))
}
