package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type EquipmentRepositoryInterface interface {
	GetEquipmentsByLocation(ctx context.Context, locationID uint64) ([]dto.ShortEquipmentDTO, error)
	FindEquipmentBySlug(ctx context.Context, locationID uint64, slug string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, locationID uint64, payload dto.CreateEquipmentDTO) error
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

func (r *EquipmentRepository) GetEquipmentsByLocation(ctx context.Context, locationID uint64) ([]dto.ShortEquipmentDTO, error) {
	query := `
		SELECT id, name, slug, location_id
		FROM equipments
		WHERE location_id = $1
		ORDER BY name ASC
	`

	rows, err := r.storage.Query(ctx, query, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]dto.ShortEquipmentDTO, 0)
	for rows.Next() {
		var item dto.ShortEquipmentDTO
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &item.LocationID); err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// FindEquipmentBySlug resolves equipment by slug scoped to a location, the
// way the nested route binds it. A slug existing under another location is a
// miss here.
func (r *EquipmentRepository) FindEquipmentBySlug(ctx context.Context, locationID uint64, slug string) (*entities.Equipment, error) {
	query := `
		SELECT id, name, slug, location_id
		FROM equipments
		WHERE slug = $1 AND location_id = $2
	`

	var equipment entities.Equipment
	err := r.storage.QueryRow(ctx, query, slug, locationID).Scan(
		&equipment.ID,
		&equipment.Name,
		&equipment.Slug,
		&equipment.LocationID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &equipment, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, locationID uint64, payload dto.CreateEquipmentDTO) error {
	query := `INSERT INTO equipments (name, slug, location_id) VALUES ($1, $2, $3)`

	_, err := r.storage.Exec(ctx, query, payload.Name, payload.Slug, locationID)
	return err
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	query := `
		UPDATE equipments
		SET name = COALESCE(NULLIF($1, ''), name),
			slug = COALESCE(NULLIF($2, ''), slug),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`

	result, err := r.storage.Exec(ctx, query, payload.Name, payload.Slug, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
