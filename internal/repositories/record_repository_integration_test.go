package repositories

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

var testPool *pgxpool.Pool

// TestMain connects to the database named by TEST_DATABASE_URL and applies
// the test schema. Without that variable the integration tests are skipped
// and only the pure tests in this package run.
func TestMain(m *testing.M) {
	testDbURL := os.Getenv("TEST_DATABASE_URL")
	if testDbURL == "" {
		log.Println("TEST_DATABASE_URL not set, skipping repository integration tests")
		os.Exit(m.Run())
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), testDbURL)
	if err != nil {
		log.Fatalf("connecting to test database: %v", err)
	}
	defer testPool.Close()

	applySchema(testPool)

	os.Exit(m.Run())
}

func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading schema.sql: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("applying test schema: %v", err)
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE TABLE group_acme_corp, equipments, locations, companies, categories, users RESTART IDENTITY CASCADE;`)
	require.NoError(t, err, "cleaning test tables")
}

// seedTenant creates the Acme Corp company, one location and one equipment,
// and returns the location (with company loaded) and the equipment id.
func seedTenant(t *testing.T, pool *pgxpool.Pool) (*entities.Location, uint64) {
	t.Helper()
	ctx := context.Background()

	var companyID uint64
	err := pool.QueryRow(ctx, `INSERT INTO companies (name) VALUES ('Acme Corp') RETURNING id`).Scan(&companyID)
	require.NoError(t, err)

	var locationID uint64
	err = pool.QueryRow(ctx,
		`INSERT INTO locations (name, slug, company_id) VALUES ('Plant North', 'plant-north', $1) RETURNING id`,
		companyID).Scan(&locationID)
	require.NoError(t, err)

	var equipmentID uint64
	err = pool.QueryRow(ctx,
		`INSERT INTO equipments (name, slug, location_id) VALUES ('Main Conveyor', 'main-conveyor', $1) RETURNING id`,
		locationID).Scan(&equipmentID)
	require.NoError(t, err)

	location := &entities.Location{
		ID:        locationID,
		Name:      "Plant North",
		Slug:      "plant-north",
		CompanyID: companyID,
		Company:   &entities.Company{ID: companyID, Name: "Acme Corp"},
	}
	return location, equipmentID
}

func insertRecord(t *testing.T, pool *pgxpool.Pool, locationID, equipmentID uint64, myconveyorID string, categoryID *uint64) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO group_acme_corp (location_id, equipment_id, myconveyor_id, category_id)
		 VALUES ($1, $2, $3, $4)`,
		locationID, equipmentID, myconveyorID, categoryID)
	require.NoError(t, err)
}

func TestRecordRepository_Integration_ListByEquipment(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	location, equipmentID := seedTenant(t, testPool)

	var motorID uint64
	err := testPool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ('Motor') RETURNING id`).Scan(&motorID)
	require.NoError(t, err)

	insertRecord(t, testPool, location.ID, equipmentID, "10", &motorID)
	insertRecord(t, testPool, location.ID, equipmentID, "2", nil)

	repo := NewRecordRepository(testPool, zap.NewNop())
	records, err := repo.ListByEquipment(context.Background(), location, equipmentID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Lexical order on the text column: "10" sorts before "2".
	assert.Equal(t, "10", records[0].MyconveyorID.String)
	assert.Equal(t, "2", records[1].MyconveyorID.String)

	// Joined category name, null when category_id is unset.
	assert.True(t, records[0].Category.Valid)
	assert.Equal(t, "Motor", records[0].Category.String)
	assert.False(t, records[1].Category.Valid)
}

func TestRecordRepository_Integration_NoMatchingRowsIsEmptyNotError(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	location, equipmentID := seedTenant(t, testPool)

	repo := NewRecordRepository(testPool, zap.NewNop())
	records, err := repo.ListByEquipment(context.Background(), location, equipmentID)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestRecordRepository_Integration_MismatchedPairFiltersToEmpty(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	location, equipmentID := seedTenant(t, testPool)
	insertRecord(t, testPool, location.ID, equipmentID, "1", nil)

	// An equipment id not belonging to the location filters to zero rows,
	// silently; no error is raised.
	repo := NewRecordRepository(testPool, zap.NewNop())
	records, err := repo.ListByEquipment(context.Background(), location, equipmentID+1000)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordRepository_Integration_MissingTenantTable(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	location, equipmentID := seedTenant(t, testPool)

	// A company whose name normalizes to a table that was never created.
	location.Company = &entities.Company{ID: 999, Name: "Ghost Industries"}

	repo := NewRecordRepository(testPool, zap.NewNop())
	_, err := repo.ListByEquipment(context.Background(), location, equipmentID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnresolvedTable)
}

func TestRecordRepository_Integration_Idempotent(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	location, equipmentID := seedTenant(t, testPool)
	insertRecord(t, testPool, location.ID, equipmentID, "A-1", nil)
	insertRecord(t, testPool, location.ID, equipmentID, "A-2", nil)

	repo := NewRecordRepository(testPool, zap.NewNop())
	first, err := repo.ListByEquipment(context.Background(), location, equipmentID)
	require.NoError(t, err)
	second, err := repo.ListByEquipment(context.Background(), location, equipmentID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
