package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/pkg/tenant"
)

const (
	demoCompanyName   = "Demo Company"
	demoLocationName  = "Demo Plant"
	demoLocationSlug  = "demo-plant"
	demoEquipmentName = "Main Conveyor"
	demoEquipmentSlug = "main-conveyor"
)

func seedDemoTenant(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - creating demo company, location and equipment...")

	var companyID uint64
	err := db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", demoCompanyName).Scan(&companyID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = db.QueryRow(ctx, "INSERT INTO companies (name) VALUES ($1) RETURNING id", demoCompanyName).Scan(&companyID)
	}
	if err != nil {
		return fmt.Errorf("failed to ensure demo company: %w", err)
	}

	var locationID uint64
	err = db.QueryRow(ctx, "SELECT id FROM locations WHERE slug = $1", demoLocationSlug).Scan(&locationID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = db.QueryRow(ctx,
			"INSERT INTO locations (name, slug, company_id) VALUES ($1, $2, $3) RETURNING id",
			demoLocationName, demoLocationSlug, companyID,
		).Scan(&locationID)
	}
	if err != nil {
		return fmt.Errorf("failed to ensure demo location: %w", err)
	}

	var equipmentID uint64
	err = db.QueryRow(ctx, "SELECT id FROM equipments WHERE slug = $1", demoEquipmentSlug).Scan(&equipmentID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = db.QueryRow(ctx,
			"INSERT INTO equipments (name, slug, location_id) VALUES ($1, $2, $3) RETURNING id",
			demoEquipmentName, demoEquipmentSlug, locationID,
		).Scan(&equipmentID)
	}
	if err != nil {
		return fmt.Errorf("failed to ensure demo equipment: %w", err)
	}

	table := tenant.TableName(demoCompanyName)
	log.Printf("  - creating record table %q...", table)

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id BIGSERIAL PRIMARY KEY,
		location_id BIGINT NOT NULL,
		equipment_id BIGINT NOT NULL,
		myconveyor_id TEXT,
		local_id TEXT,
		area TEXT,
		section TEXT,
		sub_section TEXT,
		track TEXT,
		category_id BIGINT,
		customer_erp TEXT,
		oem_code TEXT,
		oem_name TEXT,
		oem_description TEXT,
		supplier_name TEXT,
		supplier_description TEXT,
		supplier_code TEXT,
		quantity DOUBLE PRECISION,
		unit TEXT,
		status_id BIGINT,
		status_date TIMESTAMPTZ,
		pdf_file TEXT,
		note TEXT
	)`, table)
	if _, err := db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create record table %s: %w", table, err)
	}

	var existing int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE location_id = $1 AND equipment_id = $2", table)
	if err := db.QueryRow(ctx, countQuery, locationID, equipmentID).Scan(&existing); err != nil {
		return fmt.Errorf("failed to count demo records: %w", err)
	}
	if existing > 0 {
		log.Println("    - demo records already present, skipping.")
		return nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s
		(location_id, equipment_id, myconveyor_id, local_id, area, section, category_id, oem_name, quantity, unit)
		VALUES ($1, $2, $3, $4, $5, $6, (SELECT id FROM categories WHERE name = $7), $8, $9, $10)`, table)

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, r := range demoRecordsData {
		_, err := tx.Exec(ctx, insert,
			locationID, equipmentID,
			r.MyconveyorID, r.LocalID, r.Area, r.Section,
			r.CategoryName, r.OEMName, r.Quantity, r.Unit,
		)
		if err != nil {
			log.Printf("failed to insert demo record %q: %v", r.MyconveyorID, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
