package entity

import (
	"time"

	"github.com/google/uuid"
)

type DeviceStatus string

const (
	DeviceActive   DeviceStatus = "active"
	DeviceInactive DeviceStatus = "inactive"
	DeviceAlert    DeviceStatus = "alert"
)

// Device is a registered fire-detection unit owned by one account.
type Device struct {
	BaseNoDelete
	DeviceID   string       `db:"device_id"`
	Name       string       `db:"name"`
	Lat        float64      `db:"lat"`
	Lng        float64      `db:"lng"`
	Address    string       `db:"address"`
	Status     DeviceStatus `db:"status"`
	FireSensor bool         `db:"fire_sensor"`
	GasSensor  bool         `db:"gas_sensor"`
	LastUpdate time.Time    `db:"last_update"`
	OwnerID    uuid.UUID    `db:"owner_id"`
}
