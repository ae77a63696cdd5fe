package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados conocidos de un pedido. La columna es texto libre para tolerar
// estados históricos, pero el portal solo emite estos valores.
const (
	PedidoPendiente  = "pendiente"
	PedidoPagado     = "pagado"
	PedidoPreparando = "preparando"
	PedidoEntregado  = "entregado"
	PedidoCancelado  = "cancelado"
)

// Pedido representa la cabecera de un pedido contra una ferretería.
type Pedido struct {
	ID             string
	FerreteriaID   string
	ClienteID      string
	Estado         string
	Total          decimal.Decimal
	MedioPago      string // metadata de la pasarela de pago
	ReferenciaPago string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DetallePedido representa una línea de detalle de un pedido.
type DetallePedido struct {
	ID             string
	PedidoID       string
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}
