package dto

import "inventory-system/internal/entities"

type ShortEquipmentDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	LocationID uint64 `json:"location_id"`
}

type CreateEquipmentDTO struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required,slug"`
}

type UpdateEquipmentDTO struct {
	Name string `json:"name" validate:"omitempty"`
	Slug string `json:"slug" validate:"omitempty,slug"`
}

// EquipmentDetailDTO is the payload of the equipment detail endpoint:
// the equipment, its location (with company) and the flat record list read
// from the company's tenant table.
type EquipmentDetailDTO struct {
	Equipment ShortEquipmentDTO          `json:"equipment"`
	Location  LocationDTO                `json:"location"`
	Records   []entities.EquipmentRecord `json:"records"`
}
