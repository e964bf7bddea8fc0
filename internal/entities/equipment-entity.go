package entities

import "inventory-system/pkg/types"

type Equipment struct {
	ID         uint64 `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Slug       string `json:"slug" db:"slug"`
	LocationID uint64 `json:"location_id" db:"location_id"`

	types.BaseEntity
}
