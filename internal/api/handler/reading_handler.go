package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/api/validation"
	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/service"
	"github.com/blaisecz/wellness-monitor/pkg/problem"
)

const (
	maxJSONBody = 8 << 20
	maxFITBody  = 32 << 20
)

var fitContentTypes = map[string]bool{
	"application/octet-stream": true,
	"application/vnd.ant.fit":  true,
	"application/fit":          true,
}

type ReadingHandler struct {
	service service.ReadingService
}

func NewReadingHandler(service service.ReadingService) *ReadingHandler {
	return &ReadingHandler{service: service}
}

// Ingest handles POST /v1/devices/{deviceId}/readings
// @Summary Upload sensor readings
// @Description Store raw sensor records for a device. The body is either {"records": [...]} or a bare
// @Description JSON array of records. Field names may use any accepted spelling (HR, heartRate, heart_rate, ...).
// @Tags readings
// @Accept json
// @Produce json
// @Param deviceId path string true "Device ID" format(uuid)
// @Param request body domain.IngestReadingsRequest true "Raw sensor records"
// @Success 201 {object} domain.IngestReadingsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 413 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId}/readings [post]
func (h *ReadingHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			problem.PayloadTooLarge("Request body exceeds 8 MiB").Write(w)
			return
		}
		problem.BadRequest("Failed to read request body").Write(w)
		return
	}

	var req domain.IngestReadingsRequest
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &req.Records)
	} else {
		err = json.Unmarshal(trimmed, &req)
	}
	if err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Ingest(r.Context(), deviceID, req.Records, domain.ReadingSourceAPI)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		problem.InternalError("Failed to store readings").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// IngestFIT handles POST /v1/devices/{deviceId}/readings/fit
// @Summary Upload a FIT activity file
// @Description Decode the record messages of a FIT export and store them as readings
// @Tags readings
// @Accept application/octet-stream
// @Produce json
// @Param deviceId path string true "Device ID" format(uuid)
// @Param file body string true "FIT file contents"
// @Success 201 {object} domain.IngestReadingsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 413 {object} problem.Problem
// @Failure 415 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId}/readings/fit [post]
func (h *ReadingHandler) IngestFIT(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !fitContentTypes[mediaType] {
		problem.UnsupportedMediaType("FIT uploads must use application/octet-stream or application/vnd.ant.fit").Write(w)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFITBody))
	if err != nil {
		problem.PayloadTooLarge("FIT file exceeds 32 MiB").Write(w)
		return
	}

	resp, err := h.service.IngestFIT(r.Context(), deviceID, bytes.NewReader(body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
			writeDomainError(w, err)
		case errors.Is(err, domain.ErrNoSensorData):
			problem.BadRequest("FIT file contains no record messages").Write(w)
		case errors.Is(err, domain.ErrUnsupportedFormat):
			problem.BadRequest("Invalid FIT file").Write(w)
		default:
			problem.InternalError("Failed to store readings").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /v1/devices/{deviceId}/readings
// @Summary List stored readings
// @Description Readings in ascending recording order with cursor pagination
// @Tags readings
// @Produce json
// @Param deviceId path string true "Device ID" format(uuid)
// @Param from query string false "Recorded at or after (RFC3339)"
// @Param to query string false "Recorded at or before (RFC3339)"
// @Param limit query int false "Page size (1-500)" default(100)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.SensorReadingListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId}/readings [get]
func (h *ReadingHandler) List(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), deviceID, filter)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		problem.InternalError("Failed to list readings").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Latest handles GET /v1/devices/{deviceId}/sensors/latest
// @Summary Latest stored reading
// @Tags readings
// @Produce json
// @Param deviceId path string true "Device ID" format(uuid)
// @Success 200 {object} domain.SensorReadingResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId}/sensors/latest [get]
func (h *ReadingHandler) Latest(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	reading, err := h.service.Latest(r.Context(), deviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No readings stored for device").Write(w)
			return
		}
		problem.InternalError("Failed to get latest reading").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, reading)
}

func parseListFilter(r *http.Request) (domain.SensorReadingFilter, []problem.FieldError) {
	var filter domain.SensorReadingFilter
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	parseTime := func(field string) *time.Time {
		raw := q.Get(field)
		if raw == "" {
			return nil
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: field, Message: "must be a valid RFC3339 timestamp"})
			return nil
		}
		return &t
	}
	filter.From = parseTime("from")
	filter.To = parseTime("to")

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "limit", Message: "must be a positive integer"})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = q.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
