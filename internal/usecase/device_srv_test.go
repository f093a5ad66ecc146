package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"fireguard-api/internal/data/entity"
	"fireguard-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDeviceRepo struct {
	mu      sync.Mutex
	devices []*entity.Device
}

func (f *fakeDeviceRepo) Create(ctx context.Context, device *entity.Device) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *device
	f.devices = append(f.devices, &copied)
	return nil
}

func (f *fakeDeviceRepo) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, device := range f.devices {
		if device.DeviceID == deviceID {
			copied := *device
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDeviceRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var owned []*entity.Device
	for _, device := range f.devices {
		if device.OwnerID == ownerID {
			copied := *device
			owned = append(owned, &copied)
		}
	}
	return owned, nil
}

func createDeviceRequest() *request.CreateDeviceRequest {
	return &request.CreateDeviceRequest{
		DeviceID: "FG-2024-0001",
		Name:     "Warehouse sensor",
		Location: &request.Location{
			Lat:     -6.2,
			Lng:     106.8,
			Address: "Jakarta",
		},
	}
}

func TestCreateDevice(t *testing.T) {
	devices := &fakeDeviceRepo{}
	svc := NewDeviceService(devices, zap.NewNop())
	ownerID := uuid.New()

	resp, err := svc.Create(context.Background(), ownerID, createDeviceRequest())
	require.NoError(t, err)

	assert.Equal(t, "FG-2024-0001", resp.DeviceID)
	assert.Equal(t, ownerID.String(), resp.OwnerID)
	assert.Equal(t, "Jakarta", resp.Location.Address)

	// New units come up active with both sensors on
	assert.Equal(t, entity.DeviceActive, resp.Status)
	assert.True(t, resp.Sensors.Fire)
	assert.True(t, resp.Sensors.Gas)
	assert.WithinDuration(t, time.Now(), resp.LastUpdate, time.Second)
}

func TestCreateDevice_DuplicateHardwareID(t *testing.T) {
	devices := &fakeDeviceRepo{}
	svc := NewDeviceService(devices, zap.NewNop())

	_, err := svc.Create(context.Background(), uuid.New(), createDeviceRequest())
	require.NoError(t, err)

	// Second registration of the same hardware ID, even by another owner
	_, err = svc.Create(context.Background(), uuid.New(), createDeviceRequest())
	require.ErrorContains(t, err, "already exists")
	assert.Len(t, devices.devices, 1)
}

func TestCreateDevice_ValidationFailed(t *testing.T) {
	svc := NewDeviceService(&fakeDeviceRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateDeviceRequest{
		DeviceID: "FG-2024-0002",
		Name:     "No location",
	})
	require.ErrorContains(t, err, "validation failed")
}

func TestListOwned_ScopedToOwner(t *testing.T) {
	devices := &fakeDeviceRepo{}
	svc := NewDeviceService(devices, zap.NewNop())
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Create(context.Background(), alice, createDeviceRequest())
	require.NoError(t, err)

	other := createDeviceRequest()
	other.DeviceID = "FG-2024-0002"
	_, err = svc.Create(context.Background(), bob, other)
	require.NoError(t, err)

	owned, err := svc.ListOwned(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "FG-2024-0001", owned[0].DeviceID)

	empty, err := svc.ListOwned(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
