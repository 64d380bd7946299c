package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/wellness-monitor/internal/api/validation"
	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeNoData writes the empty-source marker. It is a 200 by contract.
func writeNoData(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, domain.NoDataResponse{Error: domain.ErrNoSensorData.Error()})
}

func deviceIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "deviceId"))
	if err != nil {
		problem.BadRequest("Invalid device ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// windowParam reads window_hours, falling back to def when absent.
func windowParam(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	hours := def
	if raw := r.URL.Query().Get("window_hours"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "window_hours", Message: "must be an integer"},
			}).Write(w)
			return 0, false
		}
		hours = v
	}

	if fieldErrors := validation.Validate(domain.WellnessWindow{Hours: hours}); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return 0, false
	}
	return hours, true
}

// writeDomainError maps the shared domain errors. It reports false when err
// is not one of them so callers can fall through to their own mapping.
func writeDomainError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Device not found").Write(w)
	case errors.Is(err, domain.ErrNoSensorData):
		writeNoData(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	default:
		return false
	}
	return true
}
