package dto

import "github.com/shopspring/decimal"

// VentaBucketDTO punto de la serie de ventas agrupadas por período.
type VentaBucketDTO struct {
	Periodo string          `json:"periodo"` // "2026-08-29", "2026-W35" o "2026-08" según bucket
	Total   decimal.Decimal `json:"total"`
	Pedidos int             `json:"pedidos"`
}

// VentasSerieDTO serie completa para el gráfico de ventas.
type VentasSerieDTO struct {
	Bucket string           `json:"bucket"` // dia, semana, mes
	Puntos []VentaBucketDTO `json:"puntos"`
}

// TopProductoDTO producto del ranking por unidades vendidas.
type TopProductoDTO struct {
	ProductoID      string          `json:"producto_id"`
	SKU             string          `json:"sku"`
	Nombre          string          `json:"nombre"`
	CantidadVendida int64           `json:"cantidad_vendida"`
	TotalVendido    decimal.Decimal `json:"total_vendido"`
}

// PedidosHoraDTO cuenta de pedidos en una hora del día.
type PedidosHoraDTO struct {
	Hora    int `json:"hora"`
	Pedidos int `json:"pedidos"`
}

// ResumenDTO resumen del dashboard: ventas de hoy y del mes, top productos y
// hora con más pedidos.
type ResumenDTO struct {
	VentasHoy    decimal.Decimal  `json:"ventas_hoy"`
	PedidosHoy   int              `json:"pedidos_hoy"`
	VentasMes    decimal.Decimal  `json:"ventas_mes"`
	PedidosMes   int              `json:"pedidos_mes"`
	TopProductos []TopProductoDTO `json:"top_productos"`
	HoraPico     *PedidosHoraDTO  `json:"hora_pico,omitempty"`
	Etiqueta     string           `json:"etiqueta"` // ej. "Agosto 2026"
}
