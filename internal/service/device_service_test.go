package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_Create(t *testing.T) {
	repo := NewMockDeviceRepository()
	svc := NewDeviceService(repo)

	device, err := svc.Create(context.Background(), &domain.CreateDeviceRequest{Name: "bedroom-hub", Timezone: "Europe/Prague"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, "bedroom-hub", device.Name)
	assert.Equal(t, "Europe/Prague", device.Timezone)

	got, err := svc.GetByID(context.Background(), device.ID)
	require.NoError(t, err)
	assert.Equal(t, device, got)
}

func TestDeviceService_CreateRepositoryError(t *testing.T) {
	repo := NewMockDeviceRepository()
	repo.err = errors.New("db down")

	_, err := NewDeviceService(repo).Create(context.Background(), &domain.CreateDeviceRequest{Name: "x", Timezone: "UTC"})
	assert.EqualError(t, err, "db down")
}

func TestDeviceService_GetByIDNotFound(t *testing.T) {
	_, err := NewDeviceService(NewMockDeviceRepository()).GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
