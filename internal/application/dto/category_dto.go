package dto

import "time"

// CategoryRequest crear o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse representación HTTP de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryListResponse listado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Total int                `json:"total"`
}
