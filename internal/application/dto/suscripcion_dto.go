package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GetSuscripcionRequest consulta la suscripción activa de una ferretería.
// Se mantiene como POST con cuerpo por compatibilidad con el cliente existente.
type GetSuscripcionRequest struct {
	FerreteriaID string `json:"ferreteria_id" validate:"required,uuid"`
}

// CreateSuscripcionRequest suscribe la ferretería del token a un plan.
type CreateSuscripcionRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
	Meses  int    `json:"meses" validate:"omitempty,min=1,max=24"`
}

// PlanResponse salida de un plan.
type PlanResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	PrecioMensual decimal.Decimal `json:"precio_mensual"`
	MaxProductos  int             `json:"max_productos"`
	Descripcion   string          `json:"descripcion,omitempty"`
}

// SuscripcionResponse salida de una suscripción con su plan.
type SuscripcionResponse struct {
	ID           string        `json:"id"`
	FerreteriaID string        `json:"ferreteria_id"`
	Estado       string        `json:"estado"`
	FechaInicio  time.Time     `json:"fecha_inicio"`
	FechaFin     *time.Time    `json:"fecha_fin,omitempty"`
	Plan         *PlanResponse `json:"plan,omitempty"`
}
