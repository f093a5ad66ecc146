package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"fireguard-api/internal/dto/request"
	"fireguard-api/internal/usecase"
	"fireguard-api/pkg/utils"

	"go.uber.org/zap"
)

type DeviceHandler struct {
	service usecase.DeviceService
	log     *zap.Logger
}

func NewDeviceHandler(service usecase.DeviceService, log *zap.Logger) *DeviceHandler {
	return &DeviceHandler{
		service: service,
		log:     log,
	}
}

// GetDevices handles GET /api/devices
func (h *DeviceHandler) GetDevices(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	devices, err := h.service.ListOwned(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get devices")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, devices)
}

// CreateDevice handles POST /api/devices
func (h *DeviceHandler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Device ID, name, and location are required", validationErrors)
		return
	}

	device, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create device")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, device)
}

func (h *DeviceHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
