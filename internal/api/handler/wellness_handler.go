package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/service"
	"github.com/blaisecz/wellness-monitor/pkg/problem"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WellnessHandler serves analyses over device windows and the file-backed sensor source.
type WellnessHandler struct {
	service       service.WellnessService
	export        service.ExportService
	defaultWindow int
}

func NewWellnessHandler(svc service.WellnessService, export service.ExportService, defaultWindow int) *WellnessHandler {
	if defaultWindow <= 0 {
		defaultWindow = service.DefaultWindowHours
	}
	return &WellnessHandler{service: svc, export: export, defaultWindow: defaultWindow}
}

// DeviceLive handles GET /v1/devices/{deviceId}/wellness
// @Summary Instant wellness index
// @Description Wellness index from the most recent reading of the device
// @Tags wellness
// @Produce json
// @Param deviceId path string true "Device ID" format(uuid)
// @Success 200 {object} domain.LiveWellnessResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId}/wellness [get]
func (h *WellnessHandler) DeviceLive(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.DeviceLive(r.Context(), deviceID)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		problem.InternalError("Failed to compute wellness index").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeviceAnalysis handles GET /v1/devices/{deviceId}/wellness/{analysis}
// @Summary Run a wellness analysis
// @Description Analyse the device readings of the last window_hours. analysis is one of
// @Description sleep, sedentary, stress, burnout or complete. An empty window yields {"error": "no sensor data available"}.
// @Tags wellness
// @Produce json
// @Param deviceId path string true "Device ID" format(uuid)
// @Param analysis path string true "Analysis" Enums(sleep, sedentary, stress, burnout, complete)
// @Param window_hours query int false "Window in hours (1-720)" default(24)
// @Success 200 {object} domain.WellnessReport
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId}/wellness/{analysis} [get]
func (h *WellnessHandler) DeviceAnalysis(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}
	analysis, ok := analysisParam(w, r)
	if !ok {
		return
	}
	hours, ok := windowParam(w, r, h.defaultWindow)
	if !ok {
		return
	}

	result, err := h.service.DeviceAnalysis(r.Context(), deviceID, analysis, hours)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		problem.InternalError("Failed to analyse readings").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Export handles GET /v1/devices/{deviceId}/wellness/export.xlsx
// @Summary Export a wellness workbook
// @Description Summary and per-reading sheets for the device window
// @Tags wellness
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param deviceId path string true "Device ID" format(uuid)
// @Param window_hours query int false "Window in hours (1-720)" default(24)
// @Success 200 {file} file
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId}/wellness/export.xlsx [get]
func (h *WellnessHandler) Export(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}
	hours, ok := windowParam(w, r, h.defaultWindow)
	if !ok {
		return
	}

	data, err := h.export.ExportWorkbook(r.Context(), deviceID, hours)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		problem.InternalError("Failed to export workbook").Write(w)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="wellness-%s.xlsx"`, deviceID))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Sensors handles GET /sensors
// @Summary Latest file-backed reading
// @Description Canonical form of the last record in the sensor data file
// @Tags sensor-file
// @Produce json
// @Success 200 {object} domain.Reading
// @Failure 500 {object} problem.Problem
// @Router /sensors [get]
func (h *WellnessHandler) Sensors(w http.ResponseWriter, r *http.Request) {
	reading, err := h.service.SourceLatest(r.Context())
	if err != nil {
		h.writeSourceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reading)
}

// Live handles GET /wellness
// @Summary File-backed instant wellness index
// @Tags sensor-file
// @Produce json
// @Success 200 {object} domain.LiveWellnessResponse
// @Failure 500 {object} problem.Problem
// @Router /wellness [get]
func (h *WellnessHandler) Live(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.SourceLive(r.Context())
	if err != nil {
		h.writeSourceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Analysis handles GET /wellness/{analysis}
// @Summary File-backed wellness analysis
// @Tags sensor-file
// @Produce json
// @Param analysis path string true "Analysis" Enums(sleep, sedentary, stress, burnout, complete)
// @Success 200 {object} domain.WellnessReport
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /wellness/{analysis} [get]
func (h *WellnessHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := analysisParam(w, r)
	if !ok {
		return
	}

	result, err := h.service.SourceAnalysis(r.Context(), analysis)
	if err != nil {
		h.writeSourceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Demo handles GET /wellness/demo
// @Summary Demo analysis
// @Description Runs every analysis over the pre-recorded demo day
// @Tags sensor-file
// @Produce json
// @Success 200 {object} domain.DemoReport
// @Failure 500 {object} problem.Problem
// @Router /wellness/demo [get]
func (h *WellnessHandler) Demo(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Demo(r.Context())
	if err != nil {
		h.writeSourceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *WellnessHandler) writeSourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoSensorData):
		writeNoData(w)
	case errors.Is(err, domain.ErrUnsupportedFormat):
		problem.InternalError("Sensor data file is malformed").Write(w)
	default:
		problem.InternalError("Failed to read sensor data").Write(w)
	}
}

func analysisParam(w http.ResponseWriter, r *http.Request) (service.Analysis, bool) {
	analysis, ok := service.ParseAnalysis(chi.URLParam(r, "analysis"))
	if !ok {
		problem.BadRequest("analysis must be one of: sleep, sedentary, stress, burnout, complete").Write(w)
		return "", false
	}
	return analysis, true
}
