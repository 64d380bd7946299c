package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/langfuse"
	"github.com/blaisecz/wellness-monitor/internal/llm"
	"github.com/google/uuid"
)

func TestCoachingHandler_Get(t *testing.T) {
	deviceID := uuid.New().String()

	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{"ok", nil, http.StatusOK},
		{"llm not configured", llm.ErrOpenAIUnavailable, http.StatusServiceUnavailable},
		{"llm request failed", fmt.Errorf("%w: timeout", llm.ErrOpenAIRequest), http.StatusBadGateway},
		{"llm response invalid", fmt.Errorf("%w: empty summary", llm.ErrOpenAIResponse), http.StatusBadGateway},
		{"unknown device", domain.ErrNotFound, http.StatusNotFound},
		{"no readings", domain.ErrNoSensorData, http.StatusOK},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockCoachingService{
				generateFunc: func(ctx context.Context, id uuid.UUID, hours int) (*domain.CoachingResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.CoachingResponse{Coaching: domain.CoachingOutput{Summary: "Rest well"}, TraceID: "abc"}, nil
				},
			}

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), "deviceId", deviceID)
			rec := httptest.NewRecorder()

			NewCoachingHandler(mock, 24).Get(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Get() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCoachingHandler_Feedback(t *testing.T) {
	deviceID := uuid.New().String()

	tests := []struct {
		name           string
		body           string
		err            error
		wantStatusCode int
	}{
		{"accepted", `{"trace_id": "abc", "score": 4}`, nil, http.StatusNoContent},
		{"score out of range", `{"trace_id": "abc", "score": 9}`, nil, http.StatusBadRequest},
		{"missing trace", `{"score": 3}`, nil, http.StatusBadRequest},
		{"invalid JSON", `{`, nil, http.StatusBadRequest},
		{"langfuse rejected", `{"trace_id": "abc", "score": 2}`, fmt.Errorf("%w: status 500", langfuse.ErrIngestion), http.StatusBadGateway},
		{"unknown device", `{"trace_id": "abc", "score": 2}`, domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *domain.CoachingFeedbackRequest
			mock := &MockCoachingService{
				feedbackFunc: func(ctx context.Context, id uuid.UUID, req *domain.CoachingFeedbackRequest) error {
					got = req
					return tt.err
				},
			}

			req := withURLParams(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), "deviceId", deviceID)
			rec := httptest.NewRecorder()

			NewCoachingHandler(mock, 24).Feedback(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Feedback() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusNoContent && (got == nil || got.Score != 4) {
				t.Errorf("service received %+v", got)
			}
		})
	}
}
