package impl

import (
	"testing"
	"time"

	"catalog/internal/domain/entity"
	mockService "catalog/internal/mocks/service"

	"github.com/stretchr/testify/assert"
)

func TestOTPAccepted(t *testing.T) {
	stored := &entity.OneTimePassword{Code: "111111", GeneratedAt: time.Now()}

	t.Run("match and fresh", func(t *testing.T) {
		otpService := mockService.NewMockOTPService(t)
		otpService.EXPECT().IsValid(stored).Return(true)

		assert.True(t, otpAccepted(otpService, stored, "111111"))
	})

	t.Run("match but expired", func(t *testing.T) {
		otpService := mockService.NewMockOTPService(t)
		otpService.EXPECT().IsValid(stored).Return(false)

		assert.False(t, otpAccepted(otpService, stored, "111111"))
	})

	t.Run("different length", func(t *testing.T) {
		assert.False(t, otpAccepted(mockService.NewMockOTPService(t), stored, "1111111"))
	})

	t.Run("nil stored", func(t *testing.T) {
		assert.False(t, otpAccepted(mockService.NewMockOTPService(t), nil, ""))
	})
}
