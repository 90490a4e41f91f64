package impl

import (
	"context"
	"log/slog"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/errors"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	logger     *slog.Logger
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device management service instance.
func NewDeviceService(logger *slog.Logger, deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		logger:     logger,
		deviceRepo: deviceRepo,
	}
}

// RegisterToken registers an FCM token for the user. A token already
// known to the system is reactivated and, when it belonged to another
// user, reassigned to the registering user.
func (s *deviceService) RegisterToken(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	platform := entity.DevicePlatform(deviceInfo.Platform)
	if platform != entity.PlatformIOS && platform != entity.PlatformAndroid {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unsupported platform: " + deviceInfo.Platform)
	}

	existing, err := s.deviceRepo.FindByToken(ctx, deviceInfo.FCMToken)
	if err != nil {
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(err, "failed to look up device token")
		}

		device := &entity.UserDevice{
			UserID:   userID,
			FCMToken: deviceInfo.FCMToken,
			DeviceID: deviceInfo.DeviceID,
			Platform: platform,
			IsActive: true,
		}
		if err := s.deviceRepo.Create(ctx, device); err != nil {
			return nil, errors.Wrap(err, "failed to register device")
		}

		return device, nil
	}

	if existing.UserID != userID {
		s.logger.InfoContext(ctx, "reassigning device token",
			slog.String("fromUserId", existing.UserID.String()),
			slog.String("toUserId", userID.String()),
		)
	}

	existing.UserID = userID
	existing.DeviceID = deviceInfo.DeviceID
	existing.Platform = platform
	existing.IsActive = true
	if err := s.deviceRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update device")
	}

	return existing, nil
}

// RemoveToken removes the user's FCM token registration.
func (s *deviceService) RemoveToken(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	if err := s.deviceRepo.DeleteByToken(ctx, userID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to remove device token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user.
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}
