package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
)

func TestExportService_ExportEquipmentRecords(t *testing.T) {
	svc, locationRepo, equipmentRepo, _, recordRepo := setupLocationService(false)
	seedAcme(locationRepo, equipmentRepo)
	recordRepo.records = []entities.EquipmentRecord{
		{ID: 1, MyconveyorID: null.StringFrom("10"), Category: null.StringFrom("Motor"), Quantity: null.Float64From(2)},
		{ID: 2, MyconveyorID: null.StringFrom("2")},
	}

	exporter := NewExportService(svc, zap.NewNop())
	data, filename, err := exporter.ExportEquipmentRecords(context.Background(), "plant-north", "main-conveyor")
	require.NoError(t, err)
	assert.Contains(t, filename, "plant-north_main-conveyor_")
	assert.Contains(t, filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Myconveyor ID", header)

	// Row order follows the record order (lexical: "10" before "2").
	first, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "10", first)

	second, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "2", second)

	category, err := f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "Motor", category)
}

func TestExportService_ExportEquipmentRecords_LocationMiss(t *testing.T) {
	svc, _, _, _, _ := setupLocationService(false)
	exporter := NewExportService(svc, zap.NewNop())

	_, _, err := exporter.ExportEquipmentRecords(context.Background(), "nowhere", "nothing")
	assert.Error(t, err)
}
