package adaptor

import (
	"fireguard-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Device *DeviceHandler
	Post   *PostHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Device: NewDeviceHandler(service.Device, log),
		Post:   NewPostHandler(service.Post, log),
	}
}
