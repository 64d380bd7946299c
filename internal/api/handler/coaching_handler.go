package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/wellness-monitor/internal/api/validation"
	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/langfuse"
	"github.com/blaisecz/wellness-monitor/internal/llm"
	"github.com/blaisecz/wellness-monitor/internal/service"
	"github.com/blaisecz/wellness-monitor/pkg/problem"
)

type CoachingHandler struct {
	service       service.CoachingService
	defaultWindow int
}

func NewCoachingHandler(svc service.CoachingService, defaultWindow int) *CoachingHandler {
	if defaultWindow <= 0 {
		defaultWindow = service.DefaultWindowHours
	}
	return &CoachingHandler{service: svc, defaultWindow: defaultWindow}
}

// Get handles GET /v1/devices/{deviceId}/wellness/coaching
// @Summary LLM wellness coaching
// @Description Narrates the burnout report and live index of the device window with non-medical guidance.
// @Tags coaching
// @Produce json
// @Param deviceId path string true "Device ID" format(uuid)
// @Param window_hours query int false "Window in hours (1-720)" default(24)
// @Success 200 {object} domain.CoachingResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM not configured"
// @Router /v1/devices/{deviceId}/wellness/coaching [get]
func (h *CoachingHandler) Get(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}
	hours, ok := windowParam(w, r, h.defaultWindow)
	if !ok {
		return
	}

	resp, err := h.service.Generate(r.Context(), deviceID, hours)
	if err != nil {
		switch {
		case writeDomainError(w, err):
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			problem.BadGateway("Failed to generate coaching from LLM").Write(w)
		default:
			problem.InternalError("Failed to generate coaching").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /v1/devices/{deviceId}/wellness/coaching/feedback
// @Summary Rate a coaching response
// @Description Forwards a 1-5 rating for a coaching trace to Langfuse
// @Tags coaching
// @Accept json
// @Param deviceId path string true "Device ID" format(uuid)
// @Param request body domain.CoachingFeedbackRequest true "Feedback"
// @Success 204 "Feedback accepted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 502 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /v1/devices/{deviceId}/wellness/coaching/feedback [post]
func (h *CoachingHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	var req domain.CoachingFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), deviceID, &req); err != nil {
		switch {
		case writeDomainError(w, err):
		case errors.Is(err, langfuse.ErrIngestion):
			problem.BadGateway("Failed to record feedback").Write(w)
		default:
			problem.InternalError("Failed to record feedback").Write(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
