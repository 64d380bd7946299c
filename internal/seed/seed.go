// Package seed fills the database with demo devices and a synthetic day of readings.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	readingsPerDay = 24 * 60
	insertBatch    = 500
)

// Devices are the demo devices created by Run. Their IDs are stable so the
// seed can be re-run safely.
var Devices = []domain.Device{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "demo-wristband", Timezone: "Europe/Prague"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "demo-desk-hub", Timezone: "America/New_York"},
}

// Run seeds every demo device with the 24 hours leading up to now. Devices that
// already hold readings are left untouched.
func Run(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.WithContext(ctx).AutoMigrate(&domain.Device{}, &domain.SensorReading{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now().UTC().Truncate(time.Minute).Add(-24 * time.Hour)

	for _, device := range Devices {
		device := device
		if err := db.WithContext(ctx).Where("id = ?", device.ID).FirstOrCreate(&device).Error; err != nil {
			return fmt.Errorf("failed to create device %s: %w", device.ID, err)
		}

		var existing int64
		if err := db.WithContext(ctx).Model(&domain.SensorReading{}).Where("device_id = ?", device.ID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count readings for %s: %w", device.ID, err)
		}
		if existing > 0 {
			logger.Info("device already seeded", zap.String("device_id", device.ID.String()), zap.Int64("readings", existing))
			continue
		}

		rows := Day(device.ID, start, rng)
		if err := db.WithContext(ctx).CreateInBatches(rows, insertBatch).Error; err != nil {
			return fmt.Errorf("failed to insert readings for %s: %w", device.ID, err)
		}
		logger.Info("device seeded", zap.String("device_id", device.ID.String()), zap.Int("readings", len(rows)))
	}

	logger.Info("seed completed")
	return nil
}

// Day generates one reading per minute for the 24 hours after start. The
// profile is a night of sleep, a morning commute, two desk blocks around a
// lunch walk and an evening that winds down in dim light.
func Day(deviceID uuid.UUID, start time.Time, rng *rand.Rand) []domain.SensorReading {
	rows := make([]domain.SensorReading, 0, readingsPerDay)
	for i := 0; i < readingsPerDay; i++ {
		at := start.Add(time.Duration(i) * time.Minute)
		p := phaseAt(i)
		rows = append(rows, domain.SensorReading{
			DeviceID:   deviceID,
			RecordedAt: at,
			HR:         jitter(rng, p.hr, p.hrSpread),
			RMSSD:      jitter(rng, p.rmssd, 5),
			Lux:        max(0, jitter(rng, p.lux, p.luxSpread)),
			Temp:       jitter(rng, p.temp, 0.3),
			Moving:     rng.Float64() < p.moving,
			Timestamp:  at.Format("2006-01-02 15:04:05"),
			Source:     domain.ReadingSourceSeed,
		})
	}
	return rows
}

type phase struct {
	until     int // exclusive minute of day
	hr        float64
	hrSpread  float64
	rmssd     float64
	lux       float64
	luxSpread float64
	temp      float64
	moving    float64 // probability of a moving sample
}

var phases = []phase{
	{until: 7 * 60, hr: 52, hrSpread: 2, rmssd: 62, lux: 2, luxSpread: 2, temp: 20.5},
	{until: 9 * 60, hr: 86, hrSpread: 6, rmssd: 35, lux: 450, luxSpread: 120, temp: 22, moving: 0.8},
	{until: 12*60 + 30, hr: 72, hrSpread: 3, rmssd: 38, lux: 420, luxSpread: 40, temp: 23.5},
	{until: 13*60 + 30, hr: 92, hrSpread: 6, rmssd: 30, lux: 1200, luxSpread: 300, temp: 24, moving: 0.9},
	{until: 18 * 60, hr: 74, hrSpread: 3, rmssd: 36, lux: 400, luxSpread: 40, temp: 24},
	{until: 22 * 60, hr: 78, hrSpread: 5, rmssd: 42, lux: 180, luxSpread: 60, temp: 22.5, moving: 0.4},
	{until: 24 * 60, hr: 66, hrSpread: 3, rmssd: 50, lux: 30, luxSpread: 10, temp: 21.5},
}

func phaseAt(minute int) phase {
	for _, p := range phases {
		if minute < p.until {
			return p
		}
	}
	return phases[len(phases)-1]
}

func jitter(rng *rand.Rand, center, spread float64) float64 {
	if spread == 0 {
		return center
	}
	v := center + (rng.Float64()*2-1)*spread
	return float64(int(v*10)) / 10
}
