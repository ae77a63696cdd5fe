package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePedidoRequest entrada para crear un pedido con sus líneas.
// El total lo calcula el servidor a partir del precio vigente de cada producto.
type CreatePedidoRequest struct {
	ClienteID string                `json:"cliente_id" validate:"required,uuid"`
	MedioPago string                `json:"medio_pago"`
	Lineas    []CreatePedidoDetalle `json:"lineas" validate:"required,min=1,dive"`
}

// CreatePedidoDetalle línea del pedido entrante.
type CreatePedidoDetalle struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad" validate:"required,min=1"`
}

// UpdateEstadoPedidoRequest cambio de estado de un pedido.
type UpdateEstadoPedidoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente pagado preparando entregado cancelado"`
}

// DetallePedidoResponse línea de detalle en la respuesta.
type DetallePedidoResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// PedidoResponse salida de un pedido con sus líneas.
type PedidoResponse struct {
	ID             string                  `json:"id"`
	FerreteriaID   string                  `json:"ferreteria_id"`
	ClienteID      string                  `json:"cliente_id"`
	Estado         string                  `json:"estado"`
	Total          decimal.Decimal         `json:"total"`
	MedioPago      string                  `json:"medio_pago,omitempty"`
	ReferenciaPago string                  `json:"referencia_pago,omitempty"`
	Lineas         []DetallePedidoResponse `json:"lineas,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// PedidoListResponse lista paginada de pedidos.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
