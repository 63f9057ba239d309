package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type authFixture struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	otpService   *mockService.MockOTPService
	notifier     *mockService.MockNotifier
}

func createTestAuthService(t *testing.T) *authFixture {
	t.Helper()

	fx := &authFixture{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		otpService:   mockService.NewMockOTPService(t),
		notifier:     mockService.NewMockNotifier(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		OTPService:   fx.otpService,
		Notifier:     fx.notifier,
		Logger:       discardLogger(),
	})

	return fx
}

type passwordResetFixture struct {
	service    usecase.PasswordResetUsecase
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockService.MockPasswordHasher
	otpService *mockService.MockOTPService
	notifier   *mockService.MockNotifier
}

func createTestPasswordResetService(t *testing.T) *passwordResetFixture {
	t.Helper()

	fx := &passwordResetFixture{
		userRepo:   mockRepo.NewMockUserRepository(t),
		hasher:     mockService.NewMockPasswordHasher(t),
		otpService: mockService.NewMockOTPService(t),
		notifier:   mockService.NewMockNotifier(t),
	}
	fx.service = NewPasswordResetService(PasswordResetServiceParams{
		UserRepo:   fx.userRepo,
		Hasher:     fx.hasher,
		OTPService: fx.otpService,
		Notifier:   fx.notifier,
		Logger:     discardLogger(),
	})

	return fx
}

// newUser returns a verified USER account with no outstanding OTP.
func newUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed-password",
		Email:        "a@x.com",
		MobilePhone:  "01712345678",
		Enabled:      true,
		Role:         entity.RoleUser,
	}
}

// newUnverifiedUser returns a disabled account holding OTP code generated at generatedAt.
func newUnverifiedUser(code string, generatedAt time.Time) *entity.User {
	user := newUser()
	user.Enabled = false
	user.OTP = &entity.OneTimePassword{Code: code, GeneratedAt: generatedAt}

	return user
}
