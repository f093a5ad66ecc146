package wire

import (
	"fireguard-api/internal/adaptor"
	"fireguard-api/pkg/middleware"
	"fireguard-api/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDevice(
	r chi.Router,
	deviceHandler *adaptor.DeviceHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	r.With(middleware.Auth(tokens, log)).Route("/api/devices", func(r chi.Router) {
		r.Get("/", deviceHandler.GetDevices)
		r.Post("/", deviceHandler.CreateDevice)
	})
}
