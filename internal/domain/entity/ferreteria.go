package entity

import (
	"encoding/json"
	"time"
)

// Ferreteria representa una tienda/tenant del portal. Todo producto, pedido y
// usuario no-admin queda acotado a una ferretería.
type Ferreteria struct {
	ID          string
	RUT         string // RUT chileno normalizado "NNNNNNNN-D"
	RazonSocial string
	Direccion   string
	Lat         float64
	Lng         float64
	Telefono    string
	APIKey      string // clave de integración generada por el servidor
	Horario     json.RawMessage
	Descripcion string
	Estado      string // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
