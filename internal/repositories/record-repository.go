package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/tenant"
)

// pgUndefinedTable is the postgres error code for a query against a relation
// that does not exist (a tenant table that was never created, or naming
// drift between a company name and its table).
const pgUndefinedTable = "42P01"

// recordColumns is the full column set of a per-company records table, in
// select order.
var recordColumns = []string{
	"id",
	"location_id",
	"equipment_id",
	"myconveyor_id",
	"local_id",
	"area",
	"section",
	"sub_section",
	"track",
	"category_id",
	"customer_erp",
	"oem_code",
	"oem_name",
	"oem_description",
	"supplier_name",
	"supplier_description",
	"supplier_code",
	"quantity",
	"unit",
	"status_id",
	"status_date",
	"pdf_file",
	"note",
}

type RecordRepositoryInterface interface {
	ListByEquipment(ctx context.Context, location *entities.Location, equipmentID uint64) ([]entities.EquipmentRecord, error)
}

type RecordRepository struct {
	storage querier
	logger  *zap.Logger
}

func NewRecordRepository(storage *pgxpool.Pool, logger *zap.Logger) RecordRepositoryInterface {
	return &RecordRepository{
		storage: storage,
		logger:  logger,
	}
}

// buildRecordsQuery assembles the read against one tenant table: the full
// record column set plus the joined category name, filtered to one
// (location, equipment) pair, ordered ascending by myconveyor_id. The column
// is text, so the order is lexical ("10" sorts before "2"); that lexical
// order is the authoritative order of the API.
func buildRecordsQuery(table string, locationID, equipmentID uint64) (string, []interface{}, error) {
	columns := make([]string, 0, len(recordColumns)+1)
	for _, col := range recordColumns {
		columns = append(columns, fmt.Sprintf("%s.%s", table, col))
	}
	columns = append(columns, "categories.name AS category")

	return sq.Select(columns...).
		From(table).
		LeftJoin(fmt.Sprintf("categories ON %s.category_id = categories.id", table)).
		Where(sq.Eq{
			fmt.Sprintf("%s.equipment_id", table): equipmentID,
			fmt.Sprintf("%s.location_id", table):  locationID,
		}).
		OrderBy(fmt.Sprintf("%s.myconveyor_id ASC", table)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// ListByEquipment resolves the tenant table from the location's company name
// and reads the record rows for the given equipment. A pair with no matching
// rows yields an empty slice, not an error; a mismatched pair (equipment not
// belonging to the location) likewise filters to zero rows. A missing tenant
// table surfaces as ErrUnresolvedTable. Every call re-resolves and
// re-queries; nothing is cached.
func (r *RecordRepository) ListByEquipment(ctx context.Context, location *entities.Location, equipmentID uint64) ([]entities.EquipmentRecord, error) {
	var companyName string
	if location.Company != nil {
		companyName = location.Company.Name
	}
	table := tenant.TableName(companyName)

	query, args, err := buildRecordsQuery(table, location.ID, equipmentID)
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			r.logger.Error("tenant table missing",
				zap.String("table", table),
				zap.Uint64("location_id", location.ID),
			)
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnresolvedTable, table)
		}
		return nil, err
	}
	defer rows.Close()

	records := make([]entities.EquipmentRecord, 0)
	for rows.Next() {
		var rec entities.EquipmentRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.LocationID,
			&rec.EquipmentID,
			&rec.MyconveyorID,
			&rec.LocalID,
			&rec.Area,
			&rec.Section,
			&rec.SubSection,
			&rec.Track,
			&rec.CategoryID,
			&rec.CustomerERP,
			&rec.OEMCode,
			&rec.OEMName,
			&rec.OEMDescription,
			&rec.SupplierName,
			&rec.SupplierDescription,
			&rec.SupplierCode,
			&rec.Quantity,
			&rec.Unit,
			&rec.StatusID,
			&rec.StatusDate,
			&rec.PDFFile,
			&rec.Note,
			&rec.Category,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
