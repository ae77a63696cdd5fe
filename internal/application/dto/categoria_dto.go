package dto

import "time"

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=120"`
	Descripcion string `json:"descripcion"`
	ParentID    string `json:"parent_id" validate:"omitempty,uuid"`
}

// UpdateCategoriaRequest entrada para actualización parcial.
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=120"`
	Descripcion *string `json:"descripcion"`
	ParentID    *string `json:"parent_id" validate:"omitempty,uuid"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parent_id,omitempty"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoriaListResponse lista paginada de categorías.
type CategoriaListResponse struct {
	Items []CategoriaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
