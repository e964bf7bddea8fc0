package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
)

type ExportServiceInterface interface {
	ExportEquipmentRecords(ctx context.Context, locationSlug, equipmentSlug string) ([]byte, string, error)
}

type ExportService struct {
	locationService LocationServiceInterface
	logger          *zap.Logger
}

func NewExportService(locationService LocationServiceInterface, logger *zap.Logger) *ExportService {
	return &ExportService{
		locationService: locationService,
		logger:          logger,
	}
}

var exportHeader = []string{
	"Myconveyor ID", "Local ID", "Area", "Section", "Sub section", "Track",
	"Category", "Customer ERP", "OEM code", "OEM name", "OEM description",
	"Supplier name", "Supplier description", "Supplier code",
	"Quantity", "Unit", "Status date", "Note",
}

// ExportEquipmentRecords renders one equipment's record sheet as an xlsx
// workbook. Rows keep the API's lexical myconveyor_id order.
func (s *ExportService) ExportEquipmentRecords(ctx context.Context, locationSlug, equipmentSlug string) ([]byte, string, error) {
	detail, err := s.locationService.GetEquipmentDetail(ctx, locationSlug, equipmentSlug)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", err
		}
	}

	for i := range detail.Records {
		if err := s.writeRecordRow(f, sheet, i+2, &detail.Records[i]); err != nil {
			return nil, "", err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("writing export workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s_%s.xlsx", locationSlug, equipmentSlug, uuid.NewString()[:8])
	return buf.Bytes(), filename, nil
}

func (s *ExportService) writeRecordRow(f *excelize.File, sheet string, row int, rec *entities.EquipmentRecord) error {
	statusDate := ""
	if rec.StatusDate.Valid {
		statusDate = rec.StatusDate.Time.Format("2006-01-02")
	}

	values := []interface{}{
		rec.MyconveyorID.String,
		rec.LocalID.String,
		rec.Area.String,
		rec.Section.String,
		rec.SubSection.String,
		rec.Track.String,
		rec.Category.String,
		rec.CustomerERP.String,
		rec.OEMCode.String,
		rec.OEMName.String,
		rec.OEMDescription.String,
		rec.SupplierName.String,
		rec.SupplierDescription.String,
		rec.SupplierCode.String,
		rec.Quantity.Float64,
		rec.Unit.String,
		statusDate,
		rec.Note.String,
	}

	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
