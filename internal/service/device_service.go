package service

import (
	"context"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/repository"
	"github.com/google/uuid"
)

type DeviceService interface {
	Create(ctx context.Context, req *domain.CreateDeviceRequest) (*domain.Device, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error)
}

type deviceService struct {
	repo repository.DeviceRepository
}

func NewDeviceService(repo repository.DeviceRepository) DeviceService {
	return &deviceService{repo: repo}
}

func (s *deviceService) Create(ctx context.Context, req *domain.CreateDeviceRequest) (*domain.Device, error) {
	device := &domain.Device{
		ID:       uuid.New(),
		Name:     req.Name,
		Timezone: req.Timezone,
	}

	if err := s.repo.Create(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *deviceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	return s.repo.GetByID(ctx, id)
}
