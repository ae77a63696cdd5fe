package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo de una ferretería.
// SKU es único por ferretería; Stock es un contador simple (sin multi-bodega).
type Producto struct {
	ID           string
	FerreteriaID string
	CategoriaID  string
	SKU          string
	Nombre       string
	Precio       decimal.Decimal
	Stock        int
	ImagenURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
