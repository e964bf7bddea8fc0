package dto

type CategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
