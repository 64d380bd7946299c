package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoSensorData      = errors.New("no sensor data available")
	ErrUnsupportedFormat = errors.New("unsupported sensor data format")
)
