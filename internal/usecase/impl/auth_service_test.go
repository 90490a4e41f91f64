package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"expitrack/config"
	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/service"
	mockRepo "expitrack/internal/mocks/repository"
	mockSvc "expitrack/internal/mocks/service"
	mockUC "expitrack/internal/mocks/usecase"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	userRepo      *mockRepo.MockUserRepository
	hasher        *mockSvc.MockPasswordHasher
	tokens        *mockSvc.MockTokenService
	deviceUsecase *mockUC.MockDeviceUsecase
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			ResetTokenTTL: time.Hour,
		},
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	deviceUsecase := mockUC.NewMockDeviceUsecase(t)

	svc := NewAuthService(logger, cfg, userRepo, hasher, tokens, deviceUsecase)

	return authServiceFixtures{
		service:       svc,
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		deviceUsecase: deviceUsecase,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:     "alice@example.com",
		Password:  "secret123",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	fx.hasher.EXPECT().
		Hash("secret123").
		Return("$2a$10$hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokens.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), false).
		Return("access-token", "refresh-token", nil)

	user, tokens, err := fx.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.Subscription)
	assert.Equal(t, entity.PlanFree, user.Subscription.Plan)
	assert.Equal(t, entity.SubscriptionActive, user.Subscription.Status)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Email: "alice@example.com", Password: "secret123"}

	fx.hasher.EXPECT().
		Hash("secret123").
		Return("$2a$10$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, _, err := fx.service.Signup(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("secret123", "$2a$10$hash").
		Return(true)
	fx.userRepo.EXPECT().
		UpdateLastLogin(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.tokens.EXPECT().
		GenerateTokens(userID, false).
		Return("access-token", "refresh-token", nil)

	got, tokens, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, got.ID)
	assert.NotNil(t, got.LastLoginAt)
	assert.Equal(t, "access-token", tokens.AccessToken)
}

func TestAuthService_Login_RegistersDeviceToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("secret123", "$2a$10$hash").
		Return(true)
	fx.userRepo.EXPECT().
		UpdateLastLogin(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.deviceUsecase.EXPECT().
		RegisterToken(ctx, userID, &usecase.DeviceInfo{
			FCMToken: "fcm-token-1",
			Platform: "ios",
		}).
		Return(&entity.UserDevice{}, nil)

	fx.tokens.EXPECT().
		GenerateTokens(userID, false).
		Return("access-token", "refresh-token", nil)

	_, _, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secret123",
		FCMToken: "fcm-token-1",
		Platform: "ios",
	})
	require.NoError(t, err)
}

func TestAuthService_Login_DeviceRegistrationFailureDoesNotBlock(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("secret123", "$2a$10$hash").
		Return(true)
	fx.userRepo.EXPECT().
		UpdateLastLogin(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.deviceUsecase.EXPECT().
		RegisterToken(ctx, userID, mock.AnythingOfType("*usecase.DeviceInfo")).
		Return(nil, errors.New("database error"))

	fx.tokens.EXPECT().
		GenerateTokens(userID, false).
		Return("access-token", "refresh-token", nil)

	_, _, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secret123",
		FCMToken: "fcm-token-1",
		Platform: "ios",
	})
	require.NoError(t, err)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, _, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{PasswordHash: "$2a$10$hash", IsActive: true}, nil)
	fx.hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	_, _, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{PasswordHash: "$2a$10$hash", IsActive: false}, nil)
	fx.hasher.EXPECT().
		Check("secret123", "$2a$10$hash").
		Return(true)

	_, _, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokens.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, IsActive: true}, nil)
	fx.tokens.EXPECT().
		GenerateTokens(userID, false).
		Return("new-access", "new-refresh", nil)

	tokens, err := fx.service.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokens.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_UserGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokens.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Refresh(ctx, "refresh-token")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_EmptyTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.Logout(context.Background(), uuid.New(), "")
	require.NoError(t, err)
}

func TestAuthService_Logout_UnknownTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceUsecase.EXPECT().
		RemoveToken(ctx, userID, "fcm-token-1").
		Return(repository.ErrDeviceNotFound)

	err := fx.service.Logout(ctx, userID, "fcm-token-1")
	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_StoresToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	var savedUser *entity.User
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			savedUser = user
		}).
		Return(nil)

	err := fx.service.ForgotPassword(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, savedUser.PasswordResetToken)
	// 32 random bytes hex-encoded.
	assert.Len(t, *savedUser.PasswordResetToken, 64)
	require.NotNil(t, savedUser.PasswordResetExpiry)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *savedUser.PasswordResetExpiry, time.Minute)
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ForgotPassword(ctx, "nobody@example.com")
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := "abcdef0123456789"
	expiry := time.Now().Add(30 * time.Minute)
	user := &entity.User{
		ID:                  uuid.New(),
		PasswordHash:        "$2a$10$old",
		PasswordResetToken:  &token,
		PasswordResetExpiry: &expiry,
	}

	fx.userRepo.EXPECT().
		FindByResetToken(ctx, token).
		Return(user, nil)
	fx.hasher.EXPECT().
		Hash("newsecret").
		Return("$2a$10$new", nil)

	var savedUser *entity.User
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			savedUser = user
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, token, "newsecret")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$new", savedUser.PasswordHash)
	assert.Nil(t, savedUser.PasswordResetToken)
	assert.Nil(t, savedUser.PasswordResetExpiry)
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := "abcdef0123456789"
	expiry := time.Now().Add(-time.Minute)
	user := &entity.User{
		ID:                  uuid.New(),
		PasswordResetToken:  &token,
		PasswordResetExpiry: &expiry,
	}

	fx.userRepo.EXPECT().
		FindByResetToken(ctx, token).
		Return(user, nil)

	err := fx.service.ResetPassword(ctx, token, "newsecret")
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByResetToken(ctx, "garbage").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ResetPassword(ctx, "garbage", "newsecret")
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}
