package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"expitrack/config"
	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/service"
	"expitrack/internal/errors"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
)

const (
	resetTokenBytes      = 32
	defaultResetTokenTTL = time.Hour
)

type authService struct {
	logger        *slog.Logger
	authCfg       *config.AuthConfig
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokens        service.TokenService
	deviceUsecase usecase.DeviceUsecase
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(
	logger *slog.Logger,
	cfg *config.Config,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	deviceUsecase usecase.DeviceUsecase,
) usecase.AuthUsecase {
	return &authService{
		logger:        logger,
		authCfg:       cfg.Auth,
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		deviceUsecase: deviceUsecase,
	}
}

// Signup creates a new account with a FREE subscription and returns the
// user plus an initial token pair.
func (s *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, *usecase.AuthTokens, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsActive:     true,
		Subscription: &entity.Subscription{
			Plan:      entity.PlanFree,
			Status:    entity.SubscriptionActive,
			StartDate: time.Now(),
		},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, nil, errors.Wrap(err, "failed to create user")
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Login verifies credentials, stamps last login, optionally registers
// the supplied device token, and returns a token pair.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, *usecase.AuthTokens, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, errors.Wrap(err, "failed to find user")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, domainerrors.ErrUserInactive
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.WarnContext(ctx, "failed to stamp last login",
			slog.String("userId", user.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	user.LastLoginAt = &now

	if input.FCMToken != "" {
		if _, err := s.deviceUsecase.RegisterToken(ctx, user.ID, &usecase.DeviceInfo{
			FCMToken: input.FCMToken,
			Platform: input.Platform,
		}); err != nil {
			// Device registration must not block the login itself.
			s.logger.WarnContext(ctx, "failed to register device on login",
				slog.String("userId", user.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return s.issueTokens(user)
}

// Logout removes the supplied device token registration, if any.
func (s *authService) Logout(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	if fcmToken == "" {
		return nil
	}

	if err := s.deviceUsecase.RemoveToken(ctx, userID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to remove device token")
	}

	return nil
}

// ForgotPassword issues a password reset token for the email. It never
// reveals whether the email is registered.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find user")
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}
	token := hex.EncodeToString(raw)

	ttl := defaultResetTokenTTL
	if s.authCfg != nil && s.authCfg.ResetTokenTTL > 0 {
		ttl = s.authCfg.ResetTokenTTL
	}
	expiry := time.Now().Add(ttl)

	user.PasswordResetToken = &token
	user.PasswordResetExpiry = &expiry
	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	// Token delivery (mail) happens out of band; surface it for operators.
	s.logger.InfoContext(ctx, "password reset token issued",
		slog.String("userId", user.ID.String()),
	)

	return nil
}

// ResetPassword sets a new password for the holder of a valid reset token.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to find user by reset token")
	}

	if user.PasswordResetExpiry == nil || user.PasswordResetExpiry.Before(time.Now()) {
		return domainerrors.ErrResetTokenInvalid
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user.PasswordHash = hash
	user.PasswordResetToken = nil
	user.PasswordResetExpiry = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	return nil
}

func (s *authService) issueTokens(user *entity.User) (*usecase.AuthTokens, error) {
	accessToken, refreshToken, err := s.tokens.GenerateTokens(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
