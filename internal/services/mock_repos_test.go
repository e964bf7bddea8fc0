package services

import (
	"context"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

// Hand-rolled repository mocks shared by the service tests.

type mockLocationRepo struct {
	locations map[string]*entities.Location
	created   []dto.CreateLocationDTO
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: map[string]*entities.Location{}}
}

func (m *mockLocationRepo) GetLocations(ctx context.Context, limit, offset uint64) ([]dto.LocationListItemDTO, uint64, error) {
	list := make([]dto.LocationListItemDTO, 0, len(m.locations))
	for _, loc := range m.locations {
		item := dto.LocationListItemDTO{ID: loc.ID, Name: loc.Name, Slug: loc.Slug}
		if loc.Company != nil {
			item.Company = dto.ShortCompanyDTO{ID: loc.Company.ID, Name: loc.Company.Name}
		}
		list = append(list, item)
	}
	return list, uint64(len(list)), nil
}

func (m *mockLocationRepo) FindLocationBySlug(ctx context.Context, slug string) (*entities.Location, error) {
	if loc, ok := m.locations[slug]; ok {
		return loc, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockLocationRepo) CreateLocation(ctx context.Context, payload dto.CreateLocationDTO) error {
	m.created = append(m.created, payload)
	return nil
}

func (m *mockLocationRepo) UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateLocationDTO) error {
	return nil
}

func (m *mockLocationRepo) DeleteLocation(ctx context.Context, id uint64) error {
	return nil
}

type mockEquipmentRepo struct {
	bySlug map[string]*entities.Equipment
	byLoc  map[uint64][]dto.ShortEquipmentDTO
}

func newMockEquipmentRepo() *mockEquipmentRepo {
	return &mockEquipmentRepo{
		bySlug: map[string]*entities.Equipment{},
		byLoc:  map[uint64][]dto.ShortEquipmentDTO{},
	}
}

func (m *mockEquipmentRepo) GetEquipmentsByLocation(ctx context.Context, locationID uint64) ([]dto.ShortEquipmentDTO, error) {
	return m.byLoc[locationID], nil
}

func (m *mockEquipmentRepo) FindEquipmentBySlug(ctx context.Context, locationID uint64, slug string) (*entities.Equipment, error) {
	if eq, ok := m.bySlug[slug]; ok && eq.LocationID == locationID {
		return eq, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockEquipmentRepo) CreateEquipment(ctx context.Context, locationID uint64, payload dto.CreateEquipmentDTO) error {
	return nil
}

func (m *mockEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	return nil
}

func (m *mockEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	return nil
}

type mockCompanyRepo struct {
	companies []entities.Company
}

func (m *mockCompanyRepo) GetCompanies(ctx context.Context) ([]entities.Company, error) {
	return m.companies, nil
}

func (m *mockCompanyRepo) FindCompany(ctx context.Context, id uint64) (*entities.Company, error) {
	for i := range m.companies {
		if m.companies[i].ID == id {
			return &m.companies[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type mockRecordRepo struct {
	records []entities.EquipmentRecord
	err     error
	calls   int
}

func (m *mockRecordRepo) ListByEquipment(ctx context.Context, location *entities.Location, equipmentID uint64) ([]entities.EquipmentRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

type mockUserRepo struct {
	byEmail map[string]*entities.User
	byID    map[uint64]*entities.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: map[string]*entities.User{},
		byID:    map[uint64]*entities.User{},
	}
}

func (m *mockUserRepo) add(user *entities.User) {
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
}

func (m *mockUserRepo) GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error) {
	list := make([]entities.User, 0, len(m.byID))
	for _, u := range m.byID {
		list = append(list, *u)
	}
	return list, uint64(len(list)), nil
}

func (m *mockUserRepo) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockUserRepo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockUserRepo) CreateUser(ctx context.Context, payload dto.CreateUserDTO, passwordHash string) (uint64, error) {
	id := uint64(len(m.byID) + 1)
	user := &entities.User{ID: id, Name: payload.Name, Email: payload.Email, Password: passwordHash, Role: payload.Role, Active: true}
	m.add(user)
	return id, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, passwordHash string) error {
	if _, ok := m.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id uint64) error {
	if _, ok := m.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type mockCacheRepo struct {
	data map[string]string
	sets int
	gets int
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{data: map[string]string{}}
}

func (m *mockCacheRepo) Get(ctx context.Context, key string) (string, error) {
	m.gets++
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", apperrors.ErrNotFound
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.sets++
	if s, ok := value.(string); ok {
		m.data[key] = s
	}
	return nil
}

func (m *mockCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type mockCategoryRepo struct {
	categories []entities.Category
	calls      int
}

func (m *mockCategoryRepo) GetCategories(ctx context.Context) ([]entities.Category, error) {
	m.calls++
	return m.categories, nil
}
