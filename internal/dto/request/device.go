package request

type Location struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
	Address string  `json:"address" validate:"required"`
}

type CreateDeviceRequest struct {
	DeviceID string    `json:"deviceId" validate:"required,min=3,max=64"`
	Name     string    `json:"name" validate:"required,max=100"`
	Location *Location `json:"location" validate:"required"`
}
