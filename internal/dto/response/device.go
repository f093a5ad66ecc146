package response

import (
	"time"

	"fireguard-api/internal/data/entity"
)

type LocationResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type SensorsResponse struct {
	Fire bool `json:"fire"`
	Gas  bool `json:"gas"`
}

type DeviceResponse struct {
	ID         string              `json:"id"`
	DeviceID   string              `json:"deviceId"`
	Name       string              `json:"name"`
	Location   LocationResponse    `json:"location"`
	Status     entity.DeviceStatus `json:"status"`
	Sensors    SensorsResponse     `json:"sensors"`
	LastUpdate time.Time           `json:"lastUpdate"`
	OwnerID    string              `json:"ownerId"`
}

func DeviceToResponse(device *entity.Device) DeviceResponse {
	return DeviceResponse{
		ID:       device.ID.String(),
		DeviceID: device.DeviceID,
		Name:     device.Name,
		Location: LocationResponse{
			Lat:     device.Lat,
			Lng:     device.Lng,
			Address: device.Address,
		},
		Status: device.Status,
		Sensors: SensorsResponse{
			Fire: device.FireSensor,
			Gas:  device.GasSensor,
		},
		LastUpdate: device.LastUpdate,
		OwnerID:    device.OwnerID.String(),
	}
}
