package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/langfuse"
	"github.com/blaisecz/wellness-monitor/internal/llm"
	"github.com/blaisecz/wellness-monitor/internal/repository"
	"github.com/blaisecz/wellness-monitor/internal/telemetry"
	"github.com/blaisecz/wellness-monitor/pkg/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	coachingTraceName = "wellness-coaching"
	feedbackScoreName = "user_rating"
)

// CoachingService narrates a device's burnout report through the LLM and
// forwards user ratings of that narration to Langfuse.
type CoachingService interface {
	Generate(ctx context.Context, deviceID uuid.UUID, windowHours int) (*domain.CoachingResponse, error)
	Feedback(ctx context.Context, deviceID uuid.UUID, req *domain.CoachingFeedbackRequest) error
}

type coachingService struct {
	wellness   WellnessService
	llmClient  llm.CoachingLLM
	langfuse   langfuse.Client
	deviceRepo repository.DeviceRepository
	metrics    *metrics.Manager
	logger     *zap.Logger
	model      string
}

func NewCoachingService(
	wellnessService WellnessService,
	llmClient llm.CoachingLLM,
	langfuseClient langfuse.Client,
	deviceRepo repository.DeviceRepository,
	m *metrics.Manager,
	logger *zap.Logger,
	model string,
) CoachingService {
	return &coachingService{
		wellness:   wellnessService,
		llmClient:  llmClient,
		langfuse:   langfuseClient,
		deviceRepo: deviceRepo,
		metrics:    m,
		logger:     logger,
		model:      model,
	}
}

func (s *coachingService) Generate(ctx context.Context, deviceID uuid.UUID, windowHours int) (*domain.CoachingResponse, error) {
	readings, err := s.wellness.DeviceWindow(ctx, deviceID, windowHours)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, domain.ErrNoSensorData
	}

	ctx, span := telemetry.Tracer().Start(ctx, "wellness.coaching")
	defer span.End()

	live := s.wellness.Live(readings[len(readings)-1])
	in := &domain.CoachingContext{
		WindowHours: windowHours,
		Readings:    len(readings),
		Burnout:     s.wellness.Burnout(ctx, readings),
		Live:        &live,
	}
	setObservation(span, "langfuse.observation.input", in)

	out, err := s.llmClient.GenerateCoaching(ctx, in)
	if err != nil {
		outcome := "error"
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			outcome = "unavailable"
		} else {
			s.logger.Error("coaching generation failed", zap.String("device_id", deviceID.String()), zap.Error(err))
		}
		s.metrics.RecordCoaching(outcome)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.metrics.RecordCoaching("ok")
	setObservation(span, "langfuse.observation.output", out)

	var traceID string
	if sc := span.SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}
	if s.langfuse != nil && s.langfuse.IsEnabled() {
		id, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
			ID:       traceID,
			DeviceID: deviceID.String(),
			Name:     coachingTraceName,
			Input:    in,
			Output:   out,
			Tags:     []string{"wellness", string(in.Burnout.BurnoutLevel)},
			Metadata: map[string]any{"model": s.model, "window_hours": windowHours},
		})
		if err != nil {
			s.logger.Warn("coaching trace not recorded", zap.Error(err))
		}
		traceID = id
	}

	return &domain.CoachingResponse{
		Burnout:  in.Burnout,
		Live:     in.Live,
		Coaching: *out,
		TraceID:  traceID,
	}, nil
}

// Feedback records a 1..5 rating for a coaching trace. Ratings are accepted
// and dropped when Langfuse is not configured.
func (s *coachingService) Feedback(ctx context.Context, deviceID uuid.UUID, req *domain.CoachingFeedbackRequest) error {
	exists, err := s.deviceRepo.Exists(ctx, deviceID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		s.logger.Debug("coaching feedback dropped, langfuse disabled", zap.String("trace_id", req.TraceID))
		return nil
	}

	err = s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
	if err != nil {
		s.metrics.RecordCoaching("feedback_error")
		return err
	}
	s.metrics.RecordCoaching("feedback")
	return nil
}

type attributeSetter interface {
	SetAttributes(kv ...attribute.KeyValue)
}

func setObservation(span attributeSetter, key string, v any) {
	if raw, err := json.Marshal(v); err == nil {
		span.SetAttributes(attribute.String(key, string(raw)))
	}
}
