package entities

import "github.com/aarondl/null/v8"

// EquipmentRecord is one row of a per-company maintenance table
// (group_<company>). Rows are read-only from this system's perspective;
// nothing here ever inserts or mutates them. Records sharing a MyconveyorID
// within one (location, equipment) pair are sibling items of one conveyor
// unit.
type EquipmentRecord struct {
	ID          uint64 `json:"id" db:"id"`
	LocationID  uint64 `json:"location_id" db:"location_id"`
	EquipmentID uint64 `json:"equipment_id" db:"equipment_id"`

	// MyconveyorID is a text column; the API orders by it lexically.
	MyconveyorID null.String `json:"myconveyor_id" db:"myconveyor_id"`

	LocalID    null.String `json:"local_id" db:"local_id"`
	Area       null.String `json:"area" db:"area"`
	Section    null.String `json:"section" db:"section"`
	SubSection null.String `json:"sub_section" db:"sub_section"`
	Track      null.String `json:"track" db:"track"`

	CategoryID null.Int64 `json:"category_id" db:"category_id"`

	CustomerERP         null.String `json:"customer_erp" db:"customer_erp"`
	OEMCode             null.String `json:"oem_code" db:"oem_code"`
	OEMName             null.String `json:"oem_name" db:"oem_name"`
	OEMDescription      null.String `json:"oem_description" db:"oem_description"`
	SupplierName        null.String `json:"supplier_name" db:"supplier_name"`
	SupplierDescription null.String `json:"supplier_description" db:"supplier_description"`
	SupplierCode        null.String `json:"supplier_code" db:"supplier_code"`

	Quantity null.Float64 `json:"quantity" db:"quantity"`
	Unit     null.String  `json:"unit" db:"unit"`

	StatusID   null.Int64 `json:"status_id" db:"status_id"`
	StatusDate null.Time  `json:"status_date" db:"status_date"`

	PDFFile null.String `json:"pdf_file" db:"pdf_file"`
	Note    null.String `json:"note" db:"note"`

	// Category is joined from the shared categories table; null when
	// category_id is unset or unmatched.
	Category null.String `json:"category" db:"category"`
}
