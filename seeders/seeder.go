package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries fills the lookup tables that have no dependencies.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Seeding dictionaries...")

	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}

	log.Println("Dictionaries seeded.")
}

// SeedAdmin creates the initial administrator account if it does not exist.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Seeding admin user...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Println("Admin user seeded.")
}

// SeedDemoTenant creates a demo company with its location, equipment and
// per-company record table. Useful for local development.
func SeedDemoTenant(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Seeding demo tenant...")

	if err := seedDemoTenant(ctx, db); err != nil {
		log.Fatalf("failed to seed demo tenant: %v", err)
	}

	log.Println("Demo tenant seeded.")
}
