package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - filling 'categories'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	for _, name := range categoriesData {
		if _, err := tx.Exec(ctx, query, name); err != nil {
			log.Printf("failed to insert category %q: %v", name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
