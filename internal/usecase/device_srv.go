package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fireguard-api/internal/data/entity"
	"fireguard-api/internal/data/repository"
	"fireguard-api/internal/dto/request"
	"fireguard-api/internal/dto/response"
	"fireguard-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DeviceService interface {
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]response.DeviceResponse, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateDeviceRequest) (*response.DeviceResponse, error)
}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	log        *zap.Logger
}

func NewDeviceService(deviceRepo repository.DeviceRepository, log *zap.Logger) DeviceService {
	return &deviceService{
		deviceRepo: deviceRepo,
		log:        log,
	}
}

func (ds *deviceService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]response.DeviceResponse, error) {
	devices, err := ds.deviceRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		ds.log.Error("Failed to list devices", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to get devices")
	}

	responses := make([]response.DeviceResponse, len(devices))
	for i, device := range devices {
		responses[i] = response.DeviceToResponse(device)
	}

	return responses, nil
}

func (ds *deviceService) Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateDeviceRequest) (*response.DeviceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ds.log.Warn("Create device validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := ds.deviceRepo.FindByDeviceID(ctx, req.DeviceID)
	if err != nil {
		ds.log.Error("Failed to check device ID", zap.Error(err), zap.String("device_id", req.DeviceID))
		return nil, fmt.Errorf("failed to check device")
	}
	if existing != nil {
		return nil, fmt.Errorf("device with this ID already exists")
	}

	// New units come up active with both sensors enabled
	now := time.Now()
	device := &entity.Device{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		DeviceID:   req.DeviceID,
		Name:       req.Name,
		Lat:        req.Location.Lat,
		Lng:        req.Location.Lng,
		Address:    req.Location.Address,
		Status:     entity.DeviceActive,
		FireSensor: true,
		GasSensor:  true,
		LastUpdate: now,
		OwnerID:    ownerID,
	}

	if err := ds.deviceRepo.Create(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("device with this ID already exists")
		}
		ds.log.Error("Failed to create device", zap.Error(err), zap.String("device_id", req.DeviceID))
		return nil, fmt.Errorf("failed to create device")
	}

	ds.log.Info("Device registered",
		zap.String("device_id", device.DeviceID),
		zap.String("owner_id", ownerID.String()))

	resp := response.DeviceToResponse(device)
	return &resp, nil
}
