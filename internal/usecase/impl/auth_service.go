package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpService   service.OTPService
	notifier     service.Notifier
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTPService   service.OTPService
	Notifier     service.Notifier
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpService:   params.OTPService,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login rejects an unverified account before comparing the password, so a
// disabled user gets UserNotEnabled whatever password was sent.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown username", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user during login", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLoginFailed, err.Error())
	}

	if !user.Enabled {
		srv.log(ctx).Info("Login attempt for unverified account", slog.String("username", input.Username))

		return nil, domainerrors.ErrUserNotEnabled
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with invalid password", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLoginFailed, err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.String("username", user.Username))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// Signup persists a disabled account before mailing its OTP. A mail failure
// leaves the account in place; the caller can recover through ResendVerification.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (string, error) {
	taken, err := srv.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return "", errors.Wrap(err, "failed to check username")
	}
	if taken {
		return "", domainerrors.ErrUsernameAlreadyExists.WithParam("username", input.Username)
	}

	taken, err = srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return "", errors.Wrap(err, "failed to check email")
	}
	if taken {
		return "", domainerrors.ErrEmailAlreadyExists.WithParam("email", input.Email)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to hash password during signup")
	}

	otp, err := srv.otpService.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp during signup")
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Email:        input.Email,
		MobilePhone:  input.MobilePhone,
		Enabled:      false,
		Role:         entity.RoleUser,
		OTP:          otp,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Info("User signed up", slog.String("username", user.Username), slog.Any("userID", user.ID))

	if err := srv.notifier.SendVerificationOTP(ctx, user.Email, otp.Code); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrVerificationMailFailed, err.Error())
	}

	return usecase.MsgSignedUp, nil
}

func (srv *authService) VerifyAccount(ctx context.Context, email, otp string) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "failed to find user for verification")
	}

	if user.Enabled {
		return "", domainerrors.ErrUserAlreadyVerified
	}

	if !otpAccepted(srv.otpService, user.OTP, otp) {
		srv.log(ctx).Warn("Rejected verification code", slog.Any("userID", user.ID))

		return "", domainerrors.ErrInvalidOtp
	}

	user.Enable()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to enable user")
	}

	srv.log(ctx).Info("User verified", slog.Any("userID", user.ID))

	return usecase.MsgVerified, nil
}

// ResendVerification mails a fresh OTP and only then replaces the stored one.
func (srv *authService) ResendVerification(ctx context.Context, email string) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "failed to find user for verification resend")
	}

	if user.Enabled {
		return "", domainerrors.ErrUserAlreadyVerified
	}

	otp, err := srv.otpService.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp for verification resend")
	}

	if err := srv.notifier.SendVerificationOTP(ctx, user.Email, otp.Code); err != nil {
		srv.log(ctx).Error("Failed to resend verification email", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrVerificationMailFailed, err.Error())
	}

	user.IssueOTP(otp)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to store resent otp")
	}

	return usecase.MsgVerificationResent, nil
}
