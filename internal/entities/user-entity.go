package entities

import "inventory-system/pkg/types"

type User struct {
	ID    uint64 `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	// Role is one of RO (read-only), RW (read-write), A (admin).
	Role   string `json:"role" db:"role"`
	Active bool   `json:"active" db:"active"`

	types.BaseEntity
}
