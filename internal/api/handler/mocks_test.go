package handler

import (
	"context"
	"io"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/service"
	"github.com/google/uuid"
)

// MockDeviceService is a mock implementation of DeviceService
type MockDeviceService struct {
	createFunc  func(ctx context.Context, req *domain.CreateDeviceRequest) (*domain.Device, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Device, error)
}

func (m *MockDeviceService) Create(ctx context.Context, req *domain.CreateDeviceRequest) (*domain.Device, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Device{ID: uuid.New(), Name: req.Name, Timezone: req.Timezone, CreatedAt: time.Now()}, nil
}

func (m *MockDeviceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockReadingService is a mock implementation of ReadingService
type MockReadingService struct {
	ingestFunc    func(ctx context.Context, deviceID uuid.UUID, records []domain.RawRecord, source domain.ReadingSource) (*domain.IngestReadingsResponse, error)
	ingestFITFunc func(ctx context.Context, deviceID uuid.UUID, r io.Reader) (*domain.IngestReadingsResponse, error)
	listFunc      func(ctx context.Context, deviceID uuid.UUID, filter domain.SensorReadingFilter) (*domain.SensorReadingListResponse, error)
	latestFunc    func(ctx context.Context, deviceID uuid.UUID) (*domain.SensorReadingResponse, error)
}

func (m *MockReadingService) Ingest(ctx context.Context, deviceID uuid.UUID, records []domain.RawRecord, source domain.ReadingSource) (*domain.IngestReadingsResponse, error) {
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, deviceID, records, source)
	}
	return &domain.IngestReadingsResponse{DeviceID: deviceID, Stored: len(records), Source: source}, nil
}

func (m *MockReadingService) IngestFIT(ctx context.Context, deviceID uuid.UUID, r io.Reader) (*domain.IngestReadingsResponse, error) {
	if m.ingestFITFunc != nil {
		return m.ingestFITFunc(ctx, deviceID, r)
	}
	return &domain.IngestReadingsResponse{DeviceID: deviceID, Stored: 1, Source: domain.ReadingSourceFIT}, nil
}

func (m *MockReadingService) List(ctx context.Context, deviceID uuid.UUID, filter domain.SensorReadingFilter) (*domain.SensorReadingListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, deviceID, filter)
	}
	return &domain.SensorReadingListResponse{Data: []domain.SensorReadingResponse{}}, nil
}

func (m *MockReadingService) Latest(ctx context.Context, deviceID uuid.UUID) (*domain.SensorReadingResponse, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, deviceID)
	}
	return nil, domain.ErrNotFound
}

// MockWellnessService is a mock implementation of WellnessService
type MockWellnessService struct {
	deviceAnalysisFunc func(ctx context.Context, deviceID uuid.UUID, analysis service.Analysis, windowHours int) (any, error)
	deviceLiveFunc     func(ctx context.Context, deviceID uuid.UUID) (*domain.LiveWellnessResponse, error)
	sourceAnalysisFunc func(ctx context.Context, analysis service.Analysis) (any, error)
	sourceLatestFunc   func(ctx context.Context) (*domain.Reading, error)
	sourceLiveFunc     func(ctx context.Context) (*domain.LiveWellnessResponse, error)
	demoFunc           func(ctx context.Context) (*domain.DemoReport, error)
}

func (m *MockWellnessService) DeviceAnalysis(ctx context.Context, deviceID uuid.UUID, analysis service.Analysis, windowHours int) (any, error) {
	if m.deviceAnalysisFunc != nil {
		return m.deviceAnalysisFunc(ctx, deviceID, analysis, windowHours)
	}
	return nil, domain.ErrNoSensorData
}

func (m *MockWellnessService) DeviceLive(ctx context.Context, deviceID uuid.UUID) (*domain.LiveWellnessResponse, error) {
	if m.deviceLiveFunc != nil {
		return m.deviceLiveFunc(ctx, deviceID)
	}
	return nil, domain.ErrNoSensorData
}

func (m *MockWellnessService) DeviceWindow(ctx context.Context, deviceID uuid.UUID, windowHours int) ([]domain.Reading, error) {
	return nil, nil
}

func (m *MockWellnessService) SourceAnalysis(ctx context.Context, analysis service.Analysis) (any, error) {
	if m.sourceAnalysisFunc != nil {
		return m.sourceAnalysisFunc(ctx, analysis)
	}
	return nil, domain.ErrNoSensorData
}

func (m *MockWellnessService) SourceLatest(ctx context.Context) (*domain.Reading, error) {
	if m.sourceLatestFunc != nil {
		return m.sourceLatestFunc(ctx)
	}
	return nil, domain.ErrNoSensorData
}

func (m *MockWellnessService) SourceLive(ctx context.Context) (*domain.LiveWellnessResponse, error) {
	if m.sourceLiveFunc != nil {
		return m.sourceLiveFunc(ctx)
	}
	return nil, domain.ErrNoSensorData
}

func (m *MockWellnessService) Demo(ctx context.Context) (*domain.DemoReport, error) {
	if m.demoFunc != nil {
		return m.demoFunc(ctx)
	}
	return nil, domain.ErrNoSensorData
}

func (m *MockWellnessService) Burnout(ctx context.Context, readings []domain.Reading) domain.BurnoutAnalysis {
	return domain.BurnoutAnalysis{}
}

func (m *MockWellnessService) Live(reading domain.Reading) domain.LiveWellness {
	return domain.LiveWellness{}
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	exportFunc func(ctx context.Context, deviceID uuid.UUID, windowHours int) ([]byte, error)
}

func (m *MockExportService) ExportWorkbook(ctx context.Context, deviceID uuid.UUID, windowHours int) ([]byte, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, deviceID, windowHours)
	}
	return []byte("PK"), nil
}

// MockCoachingService is a mock implementation of CoachingService
type MockCoachingService struct {
	generateFunc func(ctx context.Context, deviceID uuid.UUID, windowHours int) (*domain.CoachingResponse, error)
	feedbackFunc func(ctx context.Context, deviceID uuid.UUID, req *domain.CoachingFeedbackRequest) error
}

func (m *MockCoachingService) Generate(ctx context.Context, deviceID uuid.UUID, windowHours int) (*domain.CoachingResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, deviceID, windowHours)
	}
	return &domain.CoachingResponse{Coaching: domain.CoachingOutput{Summary: "ok"}}, nil
}

func (m *MockCoachingService) Feedback(ctx context.Context, deviceID uuid.UUID, req *domain.CoachingFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, deviceID, req)
	}
	return nil
}
