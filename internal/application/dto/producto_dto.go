package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
// Precio y Stock deben ser numéricos: un cuerpo con texto en esos campos falla
// el parseo y nunca llega a persistencia.
type CreateProductoRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock" validate:"min=0"`
	CategoriaID string          `json:"categoria_id" validate:"omitempty,uuid"`
	ImagenURL   string          `json:"imagen_url" validate:"omitempty,url"`
}

// UpdateProductoRequest entrada para actualización parcial de un producto.
type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	ImagenURL   *string          `json:"imagen_url" validate:"omitempty,url"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID           string          `json:"id"`
	FerreteriaID string          `json:"ferreteria_id"`
	CategoriaID  string          `json:"categoria_id,omitempty"`
	SKU          string          `json:"sku"`
	Nombre       string          `json:"nombre"`
	Precio       decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	ImagenURL    string          `json:"imagen_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
