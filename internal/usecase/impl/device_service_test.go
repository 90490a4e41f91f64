package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	mockRepo "expitrack/internal/mocks/repository"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(logger, deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterToken_NewToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "fcm-token-1").
		Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterToken(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "iphone-15",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterToken_ReactivatesExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "fcm-token-1",
		Platform: entity.PlatformIOS,
		IsActive: false,
	}

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "fcm-token-1").
		Return(existing, nil)
	fx.deviceRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	device, err := fx.service.RegisterToken(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "iphone-15",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.True(t, device.IsActive)
	assert.Equal(t, "iphone-15", device.DeviceID)
}

func TestDeviceService_RegisterToken_ReassignsFromOtherUser(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	oldUserID := uuid.New()
	newUserID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   oldUserID,
		FCMToken: "fcm-token-1",
		Platform: entity.PlatformAndroid,
		IsActive: true,
	}

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "fcm-token-1").
		Return(existing, nil)
	fx.deviceRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	device, err := fx.service.RegisterToken(ctx, newUserID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, newUserID, device.UserID)
}

func TestDeviceService_RegisterToken_UnsupportedPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterToken(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		Platform: "windows",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported platform")
}

func TestDeviceService_RemoveToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		DeleteByToken(ctx, userID, "fcm-token-1").
		Return(nil)

	err := fx.service.RemoveToken(ctx, userID, "fcm-token-1")
	require.NoError(t, err)
}

func TestDeviceService_RemoveToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		DeleteByToken(ctx, userID, "fcm-token-1").
		Return(repository.ErrDeviceNotFound)

	err := fx.service.RemoveToken(ctx, userID, "fcm-token-1")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(expected, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_GetUserDevices_RepoError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	_, err := fx.service.GetUserDevices(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list devices")
}
