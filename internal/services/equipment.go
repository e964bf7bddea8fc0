package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
)

type EquipmentServiceInterface interface {
	CreateEquipment(ctx context.Context, locationSlug string, payload dto.CreateEquipmentDTO) error
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	locationRepository  repositories.LocationRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	locationRepository repositories.LocationRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		locationRepository:  locationRepository,
		logger:              logger,
	}
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, locationSlug string, payload dto.CreateEquipmentDTO) error {
	location, err := s.locationRepository.FindLocationBySlug(ctx, locationSlug)
	if err != nil {
		return err
	}

	if err := s.equipmentRepository.CreateEquipment(ctx, location.ID, payload); err != nil {
		s.logger.Error("creating equipment failed",
			zap.String("location", locationSlug),
			zap.Any("payload", payload),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("equipment created", zap.String("slug", payload.Slug), zap.Uint64("location_id", location.ID))
	return nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	return s.equipmentRepository.UpdateEquipment(ctx, id, payload)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	return s.equipmentRepository.DeleteEquipment(ctx, id)
}
