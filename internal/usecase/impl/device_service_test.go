package impl

import (
	"context"
	"testing"

	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	mockrepo "horizon/internal/mocks/repository"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockrepo.MockDeviceRepository) {
	mockDeviceRepo := mockrepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: mockDeviceRepo,
		Logger:     newDiscardLogger(),
	})

	return service, mockDeviceRepo
}

func TestDeviceService_RegisterDevice_CreatesNewDevice(t *testing.T) {
	service, mockDeviceRepo := newDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	mockDeviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
	mockDeviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token",
		DeviceID: "client-device-1",
		Platform: "ios",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "client-device-1", device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	service, mockDeviceRepo := newDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		DeviceID: "client-device-1",
		FCMToken: "stale-token",
	}

	mockDeviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{existing}, nil)
	mockDeviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "fresh-token").Return(nil)
	refreshed := &entity.UserDevice{ID: existing.ID, UserID: userID, DeviceID: "client-device-1", FCMToken: "fresh-token"}
	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(refreshed, nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fresh-token",
		DeviceID: "client-device-1",
		Platform: "ios",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "fresh-token", device.FCMToken)
}

func TestDeviceService_UpdateFCMToken_ForeignDeviceForbidden(t *testing.T) {
	service, mockDeviceRepo := newDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := service.UpdateFCMToken(ctx, uuid.New(), deviceID, "fcm-token")
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_DeactivateDevice_MissingDevice(t *testing.T) {
	service, mockDeviceRepo := newDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := service.DeactivateDevice(ctx, uuid.New(), deviceID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
