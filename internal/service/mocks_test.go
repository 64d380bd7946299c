package service

import (
	"context"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/langfuse"
	"github.com/google/uuid"
)

// MockDeviceRepository is a mock implementation of DeviceRepository
type MockDeviceRepository struct {
	devices map[uuid.UUID]*domain.Device
	err     error
}

func NewMockDeviceRepository(devices ...*domain.Device) *MockDeviceRepository {
	m := &MockDeviceRepository{devices: make(map[uuid.UUID]*domain.Device)}
	for _, d := range devices {
		m.devices[d.ID] = d
	}
	return m
}

func (m *MockDeviceRepository) Create(ctx context.Context, device *domain.Device) error {
	if m.err != nil {
		return m.err
	}
	device.CreatedAt = time.Now()
	m.devices[device.ID] = device
	return nil
}

func (m *MockDeviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.devices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (m *MockDeviceRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.devices[id]
	return ok, nil
}

// MockSensorReadingRepository stores readings in memory, in insertion order.
type MockSensorReadingRepository struct {
	readings   []domain.SensorReading
	listResult []domain.SensorReading
	rangeFrom  time.Time
	rangeTo    time.Time
	err        error
}

func NewMockSensorReadingRepository() *MockSensorReadingRepository {
	return &MockSensorReadingRepository{}
}

func (m *MockSensorReadingRepository) CreateBatch(ctx context.Context, readings []domain.SensorReading) error {
	if m.err != nil {
		return m.err
	}
	for i := range readings {
		readings[i].ID = int64(len(m.readings) + 1)
		m.readings = append(m.readings, readings[i])
	}
	return nil
}

func (m *MockSensorReadingRepository) List(ctx context.Context, deviceID uuid.UUID, filter domain.SensorReadingFilter) ([]domain.SensorReading, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listResult, nil
}

func (m *MockSensorReadingRepository) ListRange(ctx context.Context, deviceID uuid.UUID, from, to time.Time) ([]domain.SensorReading, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.rangeFrom, m.rangeTo = from, to
	var out []domain.SensorReading
	for _, r := range m.readings {
		if r.DeviceID == deviceID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockSensorReadingRepository) Latest(ctx context.Context, deviceID uuid.UUID) (*domain.SensorReading, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := len(m.readings) - 1; i >= 0; i-- {
		if m.readings[i].DeviceID == deviceID {
			r := m.readings[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// MockRecordSource returns fixed raw records.
type MockRecordSource struct {
	records []domain.RawRecord
	err     error
}

func (m *MockRecordSource) Load(ctx context.Context) ([]domain.RawRecord, error) {
	return m.records, m.err
}

func (m *MockRecordSource) Latest(ctx context.Context) (domain.RawRecord, bool, error) {
	if m.err != nil || len(m.records) == 0 {
		return nil, false, m.err
	}
	return m.records[len(m.records)-1], true, nil
}

// MockCoachingLLM returns a canned coaching output.
type MockCoachingLLM struct {
	output *domain.CoachingOutput
	err    error
	got    *domain.CoachingContext
}

func (m *MockCoachingLLM) GenerateCoaching(ctx context.Context, in *domain.CoachingContext) (*domain.CoachingOutput, error) {
	m.got = in
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuseClient records traces and scores.
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
	err     error
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	id := in.ID
	if id == "" {
		id = "generated-trace"
	}
	return id, m.err
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return m.err
}
