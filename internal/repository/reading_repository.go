package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const insertBatchSize = 500

type SensorReadingRepository interface {
	CreateBatch(ctx context.Context, readings []domain.SensorReading) error
	List(ctx context.Context, deviceID uuid.UUID, filter domain.SensorReadingFilter) ([]domain.SensorReading, error)
	ListRange(ctx context.Context, deviceID uuid.UUID, from, to time.Time) ([]domain.SensorReading, error)
	Latest(ctx context.Context, deviceID uuid.UUID) (*domain.SensorReading, error)
}

type sensorReadingRepository struct {
	db *gorm.DB
}

func NewSensorReadingRepository(db *gorm.DB) SensorReadingRepository {
	return &sensorReadingRepository{db: db}
}

func (r *sensorReadingRepository) CreateBatch(ctx context.Context, readings []domain.SensorReading) error {
	if len(readings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(readings, insertBatchSize).Error
}

func (r *sensorReadingRepository) List(ctx context.Context, deviceID uuid.UUID, filter domain.SensorReadingFilter) ([]domain.SensorReading, error) {
	query := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("recorded_at ASC").
		Order("id ASC")

	if filter.From != nil {
		query = query.Where("recorded_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		// ascending: resume strictly after the cursor position
		query = query.Where(
			"(recorded_at > ?) OR (recorded_at = ? AND id > ?)",
			cursor.RecordedAt, cursor.RecordedAt, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var readings []domain.SensorReading
	if err := query.Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

// ListRange returns every reading of a device recorded within [from, to], oldest first.
func (r *sensorReadingRepository) ListRange(ctx context.Context, deviceID uuid.UUID, from, to time.Time) ([]domain.SensorReading, error) {
	var readings []domain.SensorReading
	err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to).
		Order("recorded_at ASC").
		Order("id ASC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *sensorReadingRepository) Latest(ctx context.Context, deviceID uuid.UUID) (*domain.SensorReading, error) {
	var reading domain.SensorReading
	err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("recorded_at DESC").
		Order("id DESC").
		First(&reading).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &reading, nil
}
