package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/tenant"
)

type LocationServiceInterface interface {
	GetLocations(ctx context.Context, limit, offset uint64) ([]dto.LocationListItemDTO, uint64, error)
	FindLocationBySlug(ctx context.Context, slug string) (*dto.LocationDTO, error)
	GetEquipmentDetail(ctx context.Context, locationSlug, equipmentSlug string) (*dto.EquipmentDetailDTO, error)
	CreateLocation(ctx context.Context, payload dto.CreateLocationDTO) error
	UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateLocationDTO) error
	DeleteLocation(ctx context.Context, id uint64) error
}

type LocationService struct {
	locationRepository  repositories.LocationRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	companyRepository   repositories.CompanyRepositoryInterface
	recordRepository    repositories.RecordRepositoryInterface
	strictTenantNames   bool
	logger              *zap.Logger
}

func NewLocationService(
	locationRepository repositories.LocationRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	companyRepository repositories.CompanyRepositoryInterface,
	recordRepository repositories.RecordRepositoryInterface,
	strictTenantNames bool,
	logger *zap.Logger,
) *LocationService {
	return &LocationService{
		locationRepository:  locationRepository,
		equipmentRepository: equipmentRepository,
		companyRepository:   companyRepository,
		recordRepository:    recordRepository,
		strictTenantNames:   strictTenantNames,
		logger:              logger,
	}
}

func (s *LocationService) GetLocations(ctx context.Context, limit, offset uint64) ([]dto.LocationListItemDTO, uint64, error) {
	return s.locationRepository.GetLocations(ctx, limit, offset)
}

func (s *LocationService) FindLocationBySlug(ctx context.Context, slug string) (*dto.LocationDTO, error) {
	location, err := s.locationRepository.FindLocationBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepository.GetEquipmentsByLocation(ctx, location.ID)
	if err != nil {
		s.logger.Error("loading equipment list failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	return locationToDTO(location, equipment), nil
}

// GetEquipmentDetail resolves the location and equipment by their slugs and
// reads the record rows from the company's tenant table. The equipment slug
// is resolved scoped to the location, so a slug under another location is a
// NotFound here. Record read failures (including a missing tenant table)
// pass through untranslated.
func (s *LocationService) GetEquipmentDetail(ctx context.Context, locationSlug, equipmentSlug string) (*dto.EquipmentDetailDTO, error) {
	location, err := s.locationRepository.FindLocationBySlug(ctx, locationSlug)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepository.FindEquipmentBySlug(ctx, location.ID, equipmentSlug)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepository.ListByEquipment(ctx, location, equipment.ID)
	if err != nil {
		s.logger.Error("reading equipment records failed",
			zap.String("location", locationSlug),
			zap.String("equipment", equipmentSlug),
			zap.Error(err),
		)
		return nil, err
	}

	equipmentList, err := s.equipmentRepository.GetEquipmentsByLocation(ctx, location.ID)
	if err != nil {
		return nil, err
	}

	return &dto.EquipmentDetailDTO{
		Equipment: dto.ShortEquipmentDTO{
			ID:         equipment.ID,
			Name:       equipment.Name,
			Slug:       equipment.Slug,
			LocationID: equipment.LocationID,
		},
		Location: *locationToDTO(location, equipmentList),
		Records:  records,
	}, nil
}

func (s *LocationService) CreateLocation(ctx context.Context, payload dto.CreateLocationDTO) error {
	company, err := s.companyRepository.FindCompany(ctx, payload.CompanyID)
	if err != nil {
		return err
	}

	if s.strictTenantNames {
		s.warnOnTenantCollision(ctx, company)
	}

	if err := s.locationRepository.CreateLocation(ctx, payload); err != nil {
		s.logger.Error("creating location failed", zap.Any("payload", payload), zap.Error(err))
		return err
	}
	s.logger.Info("location created", zap.String("slug", payload.Slug))
	return nil
}

// warnOnTenantCollision logs when another company normalizes to the same
// tenant table. The collision is never rejected; existing tenant tables were
// created under this convention and silently "fixing" it would orphan them.
func (s *LocationService) warnOnTenantCollision(ctx context.Context, company *entities.Company) {
	companies, err := s.companyRepository.GetCompanies(ctx)
	if err != nil {
		s.logger.Warn("collision check skipped, company list unavailable", zap.Error(err))
		return
	}
	for _, other := range companies {
		if other.ID != company.ID && tenant.Collides(other.Name, company.Name) {
			s.logger.Warn("company names normalize to the same tenant table",
				zap.String("company", company.Name),
				zap.String("other", other.Name),
				zap.String("table", tenant.TableName(company.Name)),
			)
		}
	}
}

func (s *LocationService) UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateLocationDTO) error {
	return s.locationRepository.UpdateLocation(ctx, id, payload)
}

func (s *LocationService) DeleteLocation(ctx context.Context, id uint64) error {
	return s.locationRepository.DeleteLocation(ctx, id)
}

func locationToDTO(location *entities.Location, equipment []dto.ShortEquipmentDTO) *dto.LocationDTO {
	result := &dto.LocationDTO{
		ID:        location.ID,
		Name:      location.Name,
		Slug:      location.Slug,
		Equipment: equipment,
	}
	if location.Company != nil {
		result.Company = dto.ShortCompanyDTO{
			ID:   location.Company.ID,
			Name: location.Company.Name,
		}
	}
	return result
}
