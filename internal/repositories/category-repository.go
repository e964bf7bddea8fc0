package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
)

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]entities.Category, error)
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{
		storage: storage,
	}
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]entities.Category, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Category, 0)
	for rows.Next() {
		var item entities.Category
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
