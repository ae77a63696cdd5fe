package entity

import "time"

// Categoria representa una categoría de productos (jerárquica opcional, sin
// límite de profundidad impuesto).
type Categoria struct {
	ID          string
	ParentID    string // vacío si es raíz
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
