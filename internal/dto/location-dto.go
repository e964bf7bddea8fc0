package dto

type ShortCompanyDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type LocationListItemDTO struct {
	ID             uint64          `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Company        ShortCompanyDTO `json:"company"`
	EquipmentCount uint64          `json:"equipments_count"`
}

type LocationDTO struct {
	ID        uint64              `json:"id"`
	Name      string              `json:"name"`
	Slug      string              `json:"slug"`
	Company   ShortCompanyDTO     `json:"company"`
	Equipment []ShortEquipmentDTO `json:"equipments"`
}

type CreateLocationDTO struct {
	Name      string `json:"name" validate:"required"`
	Slug      string `json:"slug" validate:"required,slug"`
	CompanyID uint64 `json:"company_id" validate:"required"`
}

type UpdateLocationDTO struct {
	Name string `json:"name" validate:"omitempty"`
	Slug string `json:"slug" validate:"omitempty,slug"`
}
