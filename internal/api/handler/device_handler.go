package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/wellness-monitor/internal/api/validation"
	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/service"
	"github.com/blaisecz/wellness-monitor/pkg/problem"
)

// @title Wellness Monitor API
// @version 1.0
// @description Sleep, sedentary, stress and burnout analysis over wearable sensor readings
// @BasePath /

type DeviceHandler struct {
	service service.DeviceService
}

func NewDeviceHandler(service service.DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

// Create handles POST /v1/devices
// @Summary Register a device
// @Description Register a wearable or room sensor hub with its home timezone
// @Tags devices
// @Accept json
// @Produce json
// @Param request body domain.CreateDeviceRequest true "Device registration request"
// @Success 201 {object} domain.DeviceResponse
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices [post]
func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	device, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create device").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, device.ToResponse())
}

// GetByID handles GET /v1/devices/{deviceId}
// @Summary Get device by ID
// @Tags devices
// @Produce json
// @Param deviceId path string true "Device ID" format(uuid)
// @Success 200 {object} domain.DeviceResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId} [get]
func (h *DeviceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	device, err := h.service.GetByID(r.Context(), deviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Device not found").Write(w)
			return
		}
		problem.InternalError("Failed to get device").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, device.ToResponse())
}
