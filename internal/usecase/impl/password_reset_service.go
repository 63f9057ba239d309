package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type passwordResetService struct {
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	otpService service.OTPService
	notifier   service.Notifier
	logger     *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	OTPService service.OTPService
	Notifier   service.Notifier
	Logger     *slog.Logger
}

func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		otpService: params.OTPService,
		notifier:   params.Notifier,
		logger:     params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset stores a fresh OTP before mailing it.
func (srv *passwordResetService) RequestReset(ctx context.Context, email string) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "failed to find user for password reset")
	}

	if !user.Enabled {
		return "", domainerrors.ErrUserNotEnabled
	}

	otp, err := srv.otpService.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate password reset otp")
	}

	user.IssueOTP(otp)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to store password reset otp")
	}

	if err := srv.notifier.SendPasswordResetOTP(ctx, user.Email, otp.Code); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrResetMailFailed, err.Error())
	}

	srv.log(ctx).Info("Password reset requested", slog.Any("userID", user.ID))

	return usecase.MsgPasswordResetRequest, nil
}

func (srv *passwordResetService) Reset(ctx context.Context, input *usecase.ResetPasswordInput) (string, error) {
	if input.Token == "" || input.Password == "" || input.ConfirmPassword == "" {
		return "", domainerrors.ErrMissingArguments
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return "", errors.Wrap(err, "failed to find user for password reset")
	}

	if !otpAccepted(srv.otpService, user.OTP, input.Token) {
		srv.log(ctx).Warn("Rejected password reset code", slog.Any("userID", user.ID))

		return "", domainerrors.ErrInvalidOtp
	}

	if input.Password != input.ConfirmPassword {
		return "", domainerrors.ErrPasswordsDoNotMatch
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	user.ClearOTP()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return usecase.MsgPasswordResetComplete, nil
}
