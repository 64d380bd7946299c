package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/repository"
	"github.com/blaisecz/wellness-monitor/internal/telemetry"
	"github.com/blaisecz/wellness-monitor/internal/wellness"
	"github.com/blaisecz/wellness-monitor/pkg/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultWindowHours = 24
	MaxWindowHours     = 720

	demoMessage     = "Demo data - simulated 24-hour sleep cycle"
	demoSampleCount = 3
)

// Analysis names one of the wellness analyses.
type Analysis string

const (
	AnalysisSleep     Analysis = "sleep"
	AnalysisSedentary Analysis = "sedentary"
	AnalysisStress    Analysis = "stress"
	AnalysisBurnout   Analysis = "burnout"
	AnalysisComplete  Analysis = "complete"
)

// ParseAnalysis maps a route segment to an Analysis.
func ParseAnalysis(s string) (Analysis, bool) {
	switch a := Analysis(s); a {
	case AnalysisSleep, AnalysisSedentary, AnalysisStress, AnalysisBurnout, AnalysisComplete:
		return a, true
	}
	return "", false
}

// RecordSource yields raw records from a file-backed collaborator.
type RecordSource interface {
	Load(ctx context.Context) ([]domain.RawRecord, error)
	Latest(ctx context.Context) (domain.RawRecord, bool, error)
}

// WellnessService runs the engine over device windows and file-backed sources.
// Each call analyses a fresh, fully materialized snapshot.
type WellnessService interface {
	DeviceAnalysis(ctx context.Context, deviceID uuid.UUID, analysis Analysis, windowHours int) (any, error)
	DeviceLive(ctx context.Context, deviceID uuid.UUID) (*domain.LiveWellnessResponse, error)
	DeviceWindow(ctx context.Context, deviceID uuid.UUID, windowHours int) ([]domain.Reading, error)

	SourceAnalysis(ctx context.Context, analysis Analysis) (any, error)
	SourceLatest(ctx context.Context) (*domain.Reading, error)
	SourceLive(ctx context.Context) (*domain.LiveWellnessResponse, error)
	Demo(ctx context.Context) (*domain.DemoReport, error)

	Burnout(ctx context.Context, readings []domain.Reading) domain.BurnoutAnalysis
	Live(reading domain.Reading) domain.LiveWellness
}

type wellnessService struct {
	engine     *wellness.Engine
	repo       repository.SensorReadingRepository
	deviceRepo repository.DeviceRepository
	source     RecordSource
	demo       RecordSource
	metrics    *metrics.Manager
	logger     *zap.Logger
	now        func() time.Time
}

func NewWellnessService(
	engine *wellness.Engine,
	repo repository.SensorReadingRepository,
	deviceRepo repository.DeviceRepository,
	source RecordSource,
	demo RecordSource,
	m *metrics.Manager,
	logger *zap.Logger,
) WellnessService {
	return &wellnessService{
		engine:     engine,
		repo:       repo,
		deviceRepo: deviceRepo,
		source:     source,
		demo:       demo,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *wellnessService) DeviceAnalysis(ctx context.Context, deviceID uuid.UUID, analysis Analysis, windowHours int) (any, error) {
	readings, err := s.DeviceWindow(ctx, deviceID, windowHours)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, domain.ErrNoSensorData
	}
	return s.run(ctx, "device", analysis, readings), nil
}

func (s *wellnessService) DeviceLive(ctx context.Context, deviceID uuid.UUID) (*domain.LiveWellnessResponse, error) {
	exists, err := s.deviceRepo.Exists(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	latest, err := s.repo.Latest(ctx, deviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoSensorData
		}
		return nil, err
	}
	return s.live(latest.ToReading()), nil
}

// DeviceWindow loads the device readings recorded in the last windowHours, oldest first.
func (s *wellnessService) DeviceWindow(ctx context.Context, deviceID uuid.UUID, windowHours int) ([]domain.Reading, error) {
	if windowHours < 1 || windowHours > MaxWindowHours {
		return nil, fmt.Errorf("%w: window_hours must be between 1 and %d", domain.ErrInvalidInput, MaxWindowHours)
	}

	exists, err := s.deviceRepo.Exists(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if windowHours > DefaultWindowHours {
		// The sleep baseline is computed over the whole window.
		s.logger.Warn("multi-day analysis window",
			zap.String("device_id", deviceID.String()),
			zap.Int("window_hours", windowHours),
		)
	}

	to := s.now().UTC()
	from := to.Add(-time.Duration(windowHours) * time.Hour)
	rows, err := s.repo.ListRange(ctx, deviceID, from, to)
	if err != nil {
		return nil, err
	}

	readings := make([]domain.Reading, len(rows))
	for i := range rows {
		readings[i] = rows[i].ToReading()
	}
	return readings, nil
}

func (s *wellnessService) SourceAnalysis(ctx context.Context, analysis Analysis) (any, error) {
	records, err := s.load(ctx, s.source)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, "file", analysis, wellness.NormalizeAll(records)), nil
}

func (s *wellnessService) SourceLatest(ctx context.Context) (*domain.Reading, error) {
	if s.source == nil {
		return nil, domain.ErrNoSensorData
	}
	record, ok, err := s.source.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNoSensorData
	}
	reading := wellness.Normalize(record)
	return &reading, nil
}

func (s *wellnessService) SourceLive(ctx context.Context) (*domain.LiveWellnessResponse, error) {
	reading, err := s.SourceLatest(ctx)
	if err != nil {
		return nil, err
	}
	return s.live(*reading), nil
}

func (s *wellnessService) Demo(ctx context.Context) (*domain.DemoReport, error) {
	records, err := s.load(ctx, s.demo)
	if err != nil {
		return nil, err
	}

	report := s.run(ctx, "demo", AnalysisComplete, wellness.NormalizeAll(records)).(domain.WellnessReport)

	n := min(demoSampleCount, len(records))
	samples := make([]domain.RawRecord, 0, 2*n)
	samples = append(samples, records[:n]...)
	samples = append(samples, records[len(records)-n:]...)

	return &domain.DemoReport{
		Message:        demoMessage,
		DataPoints:     len(records),
		Sleep:          report.Sleep,
		Sedentary:      report.Sedentary,
		Stress:         report.Stress,
		Burnout:        report.Burnout,
		SampleReadings: samples,
	}, nil
}

func (s *wellnessService) Burnout(ctx context.Context, readings []domain.Reading) domain.BurnoutAnalysis {
	return s.run(ctx, "coaching", AnalysisBurnout, readings).(domain.BurnoutAnalysis)
}

func (s *wellnessService) Live(reading domain.Reading) domain.LiveWellness {
	return s.engine.Live(reading)
}

func (s *wellnessService) live(reading domain.Reading) *domain.LiveWellnessResponse {
	return &domain.LiveWellnessResponse{Sensors: reading, Wellness: s.engine.Live(reading)}
}

func (s *wellnessService) load(ctx context.Context, src RecordSource) ([]domain.RawRecord, error) {
	if src == nil {
		return nil, domain.ErrNoSensorData
	}
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoSensorData
	}
	return records, nil
}

// run executes one analysis inside a span and records its outcome.
func (s *wellnessService) run(ctx context.Context, scope string, analysis Analysis, readings []domain.Reading) any {
	_, span := telemetry.Tracer().Start(ctx, "wellness."+string(analysis), trace.WithAttributes(
		attribute.String("wellness.scope", scope),
		attribute.Int("wellness.readings", len(readings)),
	))
	defer span.End()

	start := time.Now()
	var (
		result any
		errMsg string
	)

	switch analysis {
	case AnalysisSleep:
		r := s.engine.AnalyzeSleep(readings)
		span.SetAttributes(attribute.String("wellness.sleep_quality", string(r.SleepQuality)))
		result, errMsg = r, r.Error
	case AnalysisSedentary:
		r := s.engine.DetectSedentary(readings)
		span.SetAttributes(attribute.String("wellness.sedentary_status", string(r.SedentaryStatus)))
		result, errMsg = r, r.Error
	case AnalysisStress:
		r := s.engine.ScoreHRV(readings)
		span.SetAttributes(attribute.String("wellness.stress_level", string(r.StressLevel)))
		result, errMsg = r, r.Error
	case AnalysisBurnout:
		r := s.engine.ComputeBurnout(readings)
		span.SetAttributes(attribute.String("wellness.burnout_level", string(r.BurnoutLevel)))
		result, errMsg = r, r.Error
	default:
		r := s.engine.Complete(readings)
		r.GeneratedAt = s.now().UTC()
		span.SetAttributes(attribute.String("wellness.burnout_level", string(r.Burnout.BurnoutLevel)))
		result, errMsg = r, r.Burnout.Error
	}

	outcome := "ok"
	if errMsg != "" {
		outcome = "no_data"
		span.SetStatus(codes.Error, errMsg)
	}
	s.metrics.RecordAnalysis(string(analysis), outcome, time.Since(start))

	return result
}
