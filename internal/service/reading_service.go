package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/repository"
	"github.com/blaisecz/wellness-monitor/internal/sensors"
	"github.com/blaisecz/wellness-monitor/internal/wellness"
	"github.com/blaisecz/wellness-monitor/pkg/metrics"
	"github.com/blaisecz/wellness-monitor/pkg/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxIngestBatch caps the records accepted by one ingest call.
const MaxIngestBatch = 5000

// timestampLayouts are tried in order when deriving recorded_at from a raw
// timestamp. Layouts without a zone are read in the device timezone.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000000",
	time.RFC3339,
}

type ReadingService interface {
	Ingest(ctx context.Context, deviceID uuid.UUID, records []domain.RawRecord, source domain.ReadingSource) (*domain.IngestReadingsResponse, error)
	IngestFIT(ctx context.Context, deviceID uuid.UUID, r io.Reader) (*domain.IngestReadingsResponse, error)
	List(ctx context.Context, deviceID uuid.UUID, filter domain.SensorReadingFilter) (*domain.SensorReadingListResponse, error)
	Latest(ctx context.Context, deviceID uuid.UUID) (*domain.SensorReadingResponse, error)
}

type readingService struct {
	repo       repository.SensorReadingRepository
	deviceRepo repository.DeviceRepository
	metrics    *metrics.Manager
	logger     *zap.Logger
	now        func() time.Time
}

func NewReadingService(
	repo repository.SensorReadingRepository,
	deviceRepo repository.DeviceRepository,
	m *metrics.Manager,
	logger *zap.Logger,
) ReadingService {
	return &readingService{
		repo:       repo,
		deviceRepo: deviceRepo,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// Ingest normalizes raw records and stores them for the device in input order.
func (s *readingService) Ingest(ctx context.Context, deviceID uuid.UUID, records []domain.RawRecord, source domain.ReadingSource) (*domain.IngestReadingsResponse, error) {
	if len(records) == 0 || len(records) > MaxIngestBatch {
		return nil, fmt.Errorf("%w: batch must hold 1..%d records", domain.ErrInvalidInput, MaxIngestBatch)
	}

	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(device.Timezone)
	if err != nil {
		loc = time.UTC
	}
	ingestedAt := s.now().UTC()

	rows := make([]domain.SensorReading, len(records))
	for i, raw := range records {
		reading := wellness.Normalize(raw)
		rows[i] = domain.SensorReading{
			DeviceID:   deviceID,
			RecordedAt: recordedAt(reading.Timestamp, loc, ingestedAt),
			HR:         reading.HR,
			RMSSD:      reading.RMSSD,
			Lux:        reading.Lux,
			Temp:       reading.Temp,
			Moving:     !reading.IsStill(),
			Timestamp:  reading.Timestamp,
			Source:     source,
		}
	}

	if err := s.repo.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}

	s.metrics.RecordReadingsIngested(string(source), len(rows))
	s.logger.Debug("readings ingested",
		zap.String("device_id", deviceID.String()),
		zap.String("source", string(source)),
		zap.Int("count", len(rows)),
	)

	return &domain.IngestReadingsResponse{DeviceID: deviceID, Stored: len(rows), Source: source}, nil
}

// IngestFIT decodes a FIT activity export into per-minute records and ingests
// them. Exports longer than MaxIngestBatch minutes are rejected.
func (s *readingService) IngestFIT(ctx context.Context, deviceID uuid.UUID, r io.Reader) (*domain.IngestReadingsResponse, error) {
	records, err := sensors.DecodeFIT(r)
	if err != nil {
		return nil, err
	}
	if len(records) > MaxIngestBatch {
		return nil, fmt.Errorf("%w: FIT export spans %d minutes, at most %d per upload", domain.ErrInvalidInput, len(records), MaxIngestBatch)
	}
	return s.Ingest(ctx, deviceID, records, domain.ReadingSourceFIT)
}

func (s *readingService) List(ctx context.Context, deviceID uuid.UUID, filter domain.SensorReadingFilter) (*domain.SensorReadingListResponse, error) {
	exists, err := s.deviceRepo.Exists(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	readings, err := s.repo.List(ctx, deviceID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(readings) > limit
	if hasMore {
		readings = readings[:limit]
	}

	response := &domain.SensorReadingListResponse{
		Data:       make([]domain.SensorReadingResponse, len(readings)),
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}
	for i := range readings {
		response.Data[i] = readings[i].ToResponse()
	}

	if hasMore && len(readings) > 0 {
		last := readings[len(readings)-1]
		cursor := &pagination.Cursor{ID: last.ID, RecordedAt: last.RecordedAt}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *readingService) Latest(ctx context.Context, deviceID uuid.UUID) (*domain.SensorReadingResponse, error) {
	exists, err := s.deviceRepo.Exists(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	reading, err := s.repo.Latest(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	resp := reading.ToResponse()
	return &resp, nil
}

func recordedAt(ts string, loc *time.Location, fallback time.Time) time.Time {
	if ts == "" {
		return fallback
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t.UTC()
		}
	}
	return fallback
}
