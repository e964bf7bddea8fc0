package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type CompanyRepositoryInterface interface {
	GetCompanies(ctx context.Context) ([]entities.Company, error)
	FindCompany(ctx context.Context, id uint64) (*entities.Company, error)
}

type CompanyRepository struct {
	storage *pgxpool.Pool
}

func NewCompanyRepository(storage *pgxpool.Pool) CompanyRepositoryInterface {
	return &CompanyRepository{
		storage: storage,
	}
}

func (r *CompanyRepository) GetCompanies(ctx context.Context) ([]entities.Company, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name FROM companies ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Company, 0)
	for rows.Next() {
		var company entities.Company
		if err := rows.Scan(&company.ID, &company.Name); err != nil {
			return nil, err
		}
		list = append(list, company)
	}
	return list, rows.Err()
}

func (r *CompanyRepository) FindCompany(ctx context.Context, id uint64) (*entities.Company, error) {
	var company entities.Company
	err := r.storage.QueryRow(ctx, "SELECT id, name FROM companies WHERE id = $1", id).
		Scan(&company.ID, &company.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}
