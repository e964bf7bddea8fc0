package entities

import "inventory-system/pkg/types"

type Location struct {
	ID        uint64 `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Slug      string `json:"slug" db:"slug"`
	CompanyID uint64 `json:"company_id" db:"company_id"`

	Company *Company `json:"company,omitempty" db:"-"`

	types.BaseEntity
}
