package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/wellness"
	"github.com/blaisecz/wellness-monitor/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var dayStart = time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

// dayRecords is 30 minutes awake, an hour asleep in the dark and 30 minutes
// sitting under office light.
func dayRecords() []domain.RawRecord {
	var out []domain.RawRecord
	add := func(n int, hr, rmssd, lux float64, motion string) {
		for i := 0; i < n; i++ {
			ts := dayStart.Add(time.Duration(len(out)) * time.Minute)
			out = append(out, domain.RawRecord{
				"HR":        hr,
				"RMSSD":     rmssd,
				"Lux":       lux,
				"Temp":      21.5,
				"Motion":    motion,
				"timestamp": ts.Format("2006-01-02 15:04:05"),
			})
		}
	}
	add(30, 80, 30, 300, "YES")
	add(60, 50, 60, 2, "NO")
	add(30, 70, 35, 250, "NO")
	return out
}

func storedRows(deviceID uuid.UUID, records []domain.RawRecord) []domain.SensorReading {
	rows := make([]domain.SensorReading, len(records))
	for i, raw := range records {
		r := wellness.Normalize(raw)
		rows[i] = domain.SensorReading{
			ID:         int64(i + 1),
			DeviceID:   deviceID,
			RecordedAt: dayStart.Add(time.Duration(i) * time.Minute),
			HR:         r.HR,
			RMSSD:      r.RMSSD,
			Lux:        r.Lux,
			Temp:       r.Temp,
			Moving:     !r.IsStill(),
			Timestamp:  r.Timestamp,
			Source:     domain.ReadingSourceAPI,
		}
	}
	return rows
}

func testDevice() *domain.Device {
	return &domain.Device{ID: uuid.New(), Name: "wristband", Timezone: "UTC"}
}

func fixedClock() time.Time {
	return dayStart.Add(2 * time.Hour)
}

type wellnessFixture struct {
	device   *domain.Device
	repo     *MockSensorReadingRepository
	devices  *MockDeviceRepository
	source   *MockRecordSource
	demo     *MockRecordSource
	metrics  *metrics.Manager
	service  *wellnessService
	engine   *wellness.Engine
	readings int
}

func newWellnessFixture(records []domain.RawRecord) *wellnessFixture {
	fx := &wellnessFixture{
		device:  testDevice(),
		repo:    NewMockSensorReadingRepository(),
		source:  &MockRecordSource{records: records},
		demo:    &MockRecordSource{records: records},
		metrics: metrics.NewManager(),
		engine:  wellness.NewEngine(),
	}
	fx.devices = NewMockDeviceRepository(fx.device)
	fx.repo.readings = storedRows(fx.device.ID, records)
	fx.readings = len(records)

	svc := NewWellnessService(fx.engine, fx.repo, fx.devices, fx.source, fx.demo, fx.metrics, zap.NewNop()).(*wellnessService)
	svc.now = fixedClock
	fx.service = svc
	return fx
}

func scrape(t *testing.T, m *metrics.Manager) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return rec.Body.String()
}
