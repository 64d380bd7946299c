package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawRecord is one sensor record as produced by a collaborator (file, FIT export,
// MQTT feed). Field names vary between producers; see wellness.Normalize.
type RawRecord map[string]any

// Motion is the two-valued canonical motion indicator.
type Motion string

const (
	MotionStill  Motion = "NO"
	MotionMoving Motion = "YES"
)

// Reading is the canonical shape of a sensor reading. Zero numeric values mean
// absent or invalid.
// @Description Canonical sensor reading.
type Reading struct {
	HR        float64 `json:"hr" example:"62"`
	RMSSD     float64 `json:"rmssd" example:"48.5"`
	Lux       float64 `json:"lux" example:"3"`
	Temp      float64 `json:"temp" example:"21.5"`
	Motion    Motion  `json:"motion" example:"NO"`
	Timestamp string  `json:"timestamp" example:"2024-01-16 02:15:00"`
}

// IsStill reports whether no motion was detected for the reading.
func (r Reading) IsStill() bool {
	return r.Motion != MotionMoving
}

// ReadingSource identifies how a stored reading entered the system.
type ReadingSource string

const (
	ReadingSourceAPI  ReadingSource = "api"
	ReadingSourceFIT  ReadingSource = "fit"
	ReadingSourceMQTT ReadingSource = "mqtt"
	ReadingSourceSeed ReadingSource = "seed"
)

// SensorReading is the persisted form of a canonical reading.
type SensorReading struct {
	ID         int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	DeviceID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_sensor_readings_device_recorded" json:"device_id"`
	RecordedAt time.Time     `gorm:"not null;index:idx_sensor_readings_device_recorded" json:"recorded_at"`
	HR         float64       `gorm:"not null;default:0" json:"hr"`
	RMSSD      float64       `gorm:"column:rmssd;not null;default:0" json:"rmssd"`
	Lux        float64       `gorm:"not null;default:0" json:"lux"`
	Temp       float64       `gorm:"not null;default:0" json:"temp"`
	Moving     bool          `gorm:"not null;default:false" json:"moving"`
	Timestamp  string        `gorm:"type:text" json:"timestamp"`
	Source     ReadingSource `gorm:"type:varchar(16);not null" json:"source"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (SensorReading) TableName() string {
	return "sensor_readings"
}

// ToReading converts the stored row back into the canonical reading.
func (s *SensorReading) ToReading() Reading {
	motion := MotionStill
	if s.Moving {
		motion = MotionMoving
	}
	return Reading{
		HR:        s.HR,
		RMSSD:     s.RMSSD,
		Lux:       s.Lux,
		Temp:      s.Temp,
		Motion:    motion,
		Timestamp: s.Timestamp,
	}
}

// ToResponse converts the stored row to its API representation.
func (s *SensorReading) ToResponse() SensorReadingResponse {
	return SensorReadingResponse{
		ID:         s.ID,
		RecordedAt: s.RecordedAt,
		Reading:    s.ToReading(),
		Source:     s.Source,
	}
}

// IngestReadingsRequest is the request body for uploading raw sensor records.
// Records may use any of the accepted field spellings (HR, heartRate, heart_rate, ...).
type IngestReadingsRequest struct {
	Records []RawRecord `json:"records" validate:"required,min=1,max=5000"`
}

// IngestReadingsResponse reports how many readings were stored.
// @Description Result of a reading upload.
type IngestReadingsResponse struct {
	DeviceID uuid.UUID     `json:"device_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Stored   int           `json:"stored" example:"480"`
	Source   ReadingSource `json:"source" example:"api"`
}

// SensorReadingResponse is a stored reading as returned by the API.
// @Description Stored sensor reading.
type SensorReadingResponse struct {
	ID         int64         `json:"id" example:"1024"`
	RecordedAt time.Time     `json:"recorded_at" example:"2024-01-16T02:15:00Z"`
	Reading    Reading       `json:"reading"`
	Source     ReadingSource `json:"source" example:"api"`
}

// SensorReadingListResponse is the response body for listing readings.
// @Description Paginated list of sensor readings.
type SensorReadingListResponse struct {
	// Readings in ascending recording order
	Data []SensorReadingResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6MTAyNCwicmVjb3JkZWRfYXQiOiIyMDI0LTAxLTE2VDAyOjE1OjAwWiJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SensorReadingFilter contains filter parameters for listing readings
type SensorReadingFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
