package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una suscripción.
const (
	SuscripcionActiva    = "activa"
	SuscripcionVencida   = "vencida"
	SuscripcionCancelada = "cancelada"
)

// Plan representa un plan de facturación disponible para las ferreterías.
type Plan struct {
	ID            string
	Nombre        string
	PrecioMensual decimal.Decimal
	MaxProductos  int // 0 = sin límite
	Descripcion   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Suscripcion representa la adhesión de una ferretería a un plan, con su
// ventana de validez.
type Suscripcion struct {
	ID           string
	FerreteriaID string
	PlanID       string
	Estado       string
	FechaInicio  time.Time
	FechaFin     *time.Time // nil = sin vencimiento definido
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
