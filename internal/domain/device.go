package domain

import (
	"time"

	"github.com/google/uuid"
)

// Device is a wearable or room sensor hub that produces sensor readings.
type Device struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Device) TableName() string {
	return "devices"
}

// CreateDeviceRequest is the request body for registering a device
type CreateDeviceRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=128"`
	Timezone string `json:"timezone" validate:"required,timezone"`
}

// DeviceResponse is the response body for device endpoints
// @Description Registered sensor device.
type DeviceResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"bedroom-wristband"`
	Timezone  string    `json:"timezone" example:"Europe/Prague"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (d *Device) ToResponse() DeviceResponse {
	return DeviceResponse{
		ID:        d.ID,
		Name:      d.Name,
		Timezone:  d.Timezone,
		CreatedAt: d.CreatedAt,
	}
}
