package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type LocationRepositoryInterface interface {
	GetLocations(ctx context.Context, limit, offset uint64) ([]dto.LocationListItemDTO, uint64, error)
	FindLocationBySlug(ctx context.Context, slug string) (*entities.Location, error)
	CreateLocation(ctx context.Context, payload dto.CreateLocationDTO) error
	UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateLocationDTO) error
	DeleteLocation(ctx context.Context, id uint64) error
}

type LocationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewLocationRepository(storage *pgxpool.Pool, logger *zap.Logger) LocationRepositoryInterface {
	return &LocationRepository{
		storage: storage,
		logger:  logger,
	}
}

// GetLocations lists locations with their company name and equipment count,
// ordered by location name, paginated.
func (r *LocationRepository) GetLocations(ctx context.Context, limit, offset uint64) ([]dto.LocationListItemDTO, uint64, error) {
	query, args, err := sq.Select(
		"locations.id",
		"locations.name",
		"locations.slug",
		"companies.id AS company_id",
		"companies.name AS company_name",
		"(SELECT COUNT(*) FROM equipments WHERE equipments.location_id = locations.id) AS equipments_count",
	).
		From("locations").
		Join("companies ON companies.id = locations.company_id").
		OrderBy("locations.name ASC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]dto.LocationListItemDTO, 0)
	for rows.Next() {
		var item dto.LocationListItemDTO
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Slug,
			&item.Company.ID,
			&item.Company.Name,
			&item.EquipmentCount,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM locations").Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// FindLocationBySlug loads a location with its company relation.
func (r *LocationRepository) FindLocationBySlug(ctx context.Context, slug string) (*entities.Location, error) {
	query := `
		SELECT l.id, l.name, l.slug, l.company_id, c.id, c.name
		FROM locations l
			JOIN companies c ON c.id = l.company_id
		WHERE l.slug = $1
	`

	var location entities.Location
	var company entities.Company

	err := r.storage.QueryRow(ctx, query, slug).Scan(
		&location.ID,
		&location.Name,
		&location.Slug,
		&location.CompanyID,
		&company.ID,
		&company.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	location.Company = &company
	return &location, nil
}

func (r *LocationRepository) CreateLocation(ctx context.Context, payload dto.CreateLocationDTO) error {
	query := `INSERT INTO locations (name, slug, company_id) VALUES ($1, $2, $3)`

	_, err := r.storage.Exec(ctx, query, payload.Name, payload.Slug, payload.CompanyID)
	return err
}

func (r *LocationRepository) UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateLocationDTO) error {
	builder := sq.Update("locations").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if payload.Name != "" {
		builder = builder.Set("name", payload.Name)
	}
	if payload.Slug != "" {
		builder = builder.Set("slug", payload.Slug)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *LocationRepository) DeleteLocation(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM locations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
