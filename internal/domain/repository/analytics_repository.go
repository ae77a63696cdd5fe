package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Buckets de agrupación temporal soportados por GetVentasPorPeriodo.
const (
	BucketDia    = "dia"
	BucketSemana = "semana"
	BucketMes    = "mes"
)

// VentaBucketResult agrega ventas de una ferretería en un período (día/semana/mes).
type VentaBucketResult struct {
	Periodo time.Time
	Total   decimal.Decimal
	Pedidos int
}

// TopProductoResult producto ordenado por unidades vendidas en el rango.
type TopProductoResult struct {
	ProductoID      string
	SKU             string
	Nombre          string
	CantidadVendida int64
	TotalVendido    decimal.Decimal
}

// PedidosPorHoraResult cuenta de pedidos por hora del día (0-23).
type PedidosPorHoraResult struct {
	Hora    int
	Pedidos int
}

// AnalyticsRepository consultas read-only de analítica de pedidos, siempre
// acotadas a una ferretería. Reemplaza las reducciones que el dashboard hacía
// en el navegador sobre filas crudas.
type AnalyticsRepository interface {
	GetVentasPorPeriodo(ctx context.Context, ferreteriaID, bucket string, desde, hasta time.Time) ([]VentaBucketResult, error)
	GetTopProductos(ctx context.Context, ferreteriaID string, desde, hasta time.Time, limit int) ([]TopProductoResult, error)
	GetPedidosPorHora(ctx context.Context, ferreteriaID string, desde, hasta time.Time) ([]PedidosPorHoraResult, error)
	GetVentasMetrics(ctx context.Context, ferreteriaID string, desde, hasta time.Time) (total decimal.Decimal, pedidos int, err error)
}
