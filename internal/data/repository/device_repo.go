package repository

import (
	"context"
	"errors"
	"fmt"

	"fireguard-api/internal/data/entity"
	"fireguard-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)
}

type deviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDeviceRepository(db database.PgxIface, log *zap.Logger) DeviceRepository {
	return &deviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "device")),
	}
}

const deviceColumns = `id, device_id, name, lat, lng, address, status,
	       fire_sensor, gas_sensor, last_update, owner_id, created_at, updated_at`

func scanDevice(row pgx.Row) (*entity.Device, error) {
	var device entity.Device
	err := row.Scan(
		&device.ID,
		&device.DeviceID,
		&device.Name,
		&device.Lat,
		&device.Lng,
		&device.Address,
		&device.Status,
		&device.FireSensor,
		&device.GasSensor,
		&device.LastUpdate,
		&device.OwnerID,
		&device.CreatedAt,
		&device.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// Create inserts a new device. A duplicate hardware identifier surfaces as
// ErrDuplicate.
func (dr *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	query := `
		INSERT INTO devices (id, device_id, name, lat, lng, address, status,
		                    fire_sensor, gas_sensor, last_update, owner_id,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := dr.db.Exec(ctx, query,
		device.ID,
		device.DeviceID,
		device.Name,
		device.Lat,
		device.Lng,
		device.Address,
		device.Status,
		device.FireSensor,
		device.GasSensor,
		device.LastUpdate,
		device.OwnerID,
		device.CreatedAt,
		device.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("create device %s: %w", device.DeviceID, ErrDuplicate)
		}

		dr.log.Error("Failed to create device",
			zap.Error(err),
			zap.String("device_id", device.DeviceID),
		)
		return fmt.Errorf("create device %s: %w", device.DeviceID, err)
	}

	return nil
}

func (dr *deviceRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error) {
	query := `
		SELECT ` + deviceColumns + `
		FROM devices
		WHERE device_id = $1
	`

	device, err := scanDevice(dr.db.QueryRow(ctx, query, deviceID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		dr.log.Error("Failed to find device",
			zap.Error(err),
			zap.String("device_id", deviceID),
		)
		return nil, fmt.Errorf("find device %s: %w", deviceID, err)
	}

	return device, nil
}

func (dr *deviceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	query := `
		SELECT ` + deviceColumns + `
		FROM devices
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := dr.db.Query(ctx, query, ownerID)
	if err != nil {
		dr.log.Error("Failed to get devices by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find devices for owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var devices []*entity.Device
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			dr.log.Error("Failed to scan device row", zap.Error(err))
			return nil, fmt.Errorf("scan device row: %w", err)
		}
		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		dr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate devices rows: %w", err)
	}

	return devices, nil
}
