package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre pedidos de una ferretería.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// truncArg traduce el bucket de la API al argumento de date_trunc.
func truncArg(bucket string) (string, error) {
	switch bucket {
	case repository.BucketDia:
		return "day", nil
	case repository.BucketSemana:
		return "week", nil
	case repository.BucketMes:
		return "month", nil
	default:
		return "", fmt.Errorf("bucket desconocido: %q", bucket)
	}
}

// GetVentasPorPeriodo agrupa ventas (pedidos no cancelados) por día, semana o
// mes calendario. Los períodos sin pedidos no producen fila.
func (r *AnalyticsRepo) GetVentasPorPeriodo(
	ctx context.Context,
	ferreteriaID, bucket string,
	desde, hasta time.Time,
) ([]repository.VentaBucketResult, error) {
	trunc, err := truncArg(bucket)
	if err != nil {
		return nil, err
	}

	// date_trunc no acepta placeholder para la unidad; `trunc` proviene del
	// switch de arriba, nunca de la entrada del cliente.
	query := fmt.Sprintf(`
	SELECT
	    date_trunc('%s', p.created_at) AS periodo,
	    COALESCE(SUM(p.total), 0)      AS total,
	    COUNT(*)                       AS pedidos
	FROM pedidos p
	WHERE p.ferreteria_id = $1
	  AND p.created_at >= $2 AND p.created_at < $3
	  AND p.estado <> $4
	GROUP BY periodo
	ORDER BY periodo`, trunc)

	rows, err := r.pool.Query(ctx, query, ferreteriaID, desde, hasta, entity.PedidoCancelado)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetVentasPorPeriodo: %w", err)
	}
	defer rows.Close()

	var results []repository.VentaBucketResult
	for rows.Next() {
		var row repository.VentaBucketResult
		if err := rows.Scan(&row.Periodo, &row.Total, &row.Pedidos); err != nil {
			return nil, fmt.Errorf("analytics.GetVentasPorPeriodo scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProductos devuelve los `limit` productos con más unidades vendidas en
// el rango, desempatando por monto total.
func (r *AnalyticsRepo) GetTopProductos(
	ctx context.Context,
	ferreteriaID string,
	desde, hasta time.Time,
	limit int,
) ([]repository.TopProductoResult, error) {
	const query = `
	SELECT
	    pr.id,
	    pr.sku,
	    pr.nombre,
	    SUM(d.cantidad)                     AS cantidad_vendida,
	    SUM(d.cantidad * d.precio_unitario) AS total_vendido
	FROM pedidos p
	JOIN detalle_pedidos d ON d.pedido_id  = p.id
	JOIN productos       pr ON pr.id       = d.producto_id
	WHERE p.ferreteria_id = $1
	  AND p.created_at >= $2 AND p.created_at < $3
	  AND p.estado <> $4
	GROUP BY pr.id, pr.sku, pr.nombre
	ORDER BY cantidad_vendida DESC, total_vendido DESC
	LIMIT $5`

	rows, err := r.pool.Query(ctx, query, ferreteriaID, desde, hasta, entity.PedidoCancelado, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProductos: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductoResult
	for rows.Next() {
		var row repository.TopProductoResult
		if err := rows.Scan(&row.ProductoID, &row.SKU, &row.Nombre, &row.CantidadVendida, &row.TotalVendido); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProductos scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetPedidosPorHora cuenta pedidos por hora del día (0-23). Las horas sin
// pedidos no producen fila.
func (r *AnalyticsRepo) GetPedidosPorHora(
	ctx context.Context,
	ferreteriaID string,
	desde, hasta time.Time,
) ([]repository.PedidosPorHoraResult, error) {
	const query = `
	SELECT
	    EXTRACT(HOUR FROM p.created_at)::INT AS hora,
	    COUNT(*)                             AS pedidos
	FROM pedidos p
	WHERE p.ferreteria_id = $1
	  AND p.created_at >= $2 AND p.created_at < $3
	  AND p.estado <> $4
	GROUP BY hora
	ORDER BY hora`

	rows, err := r.pool.Query(ctx, query, ferreteriaID, desde, hasta, entity.PedidoCancelado)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetPedidosPorHora: %w", err)
	}
	defer rows.Close()

	var results []repository.PedidosPorHoraResult
	for rows.Next() {
		var row repository.PedidosPorHoraResult
		if err := rows.Scan(&row.Hora, &row.Pedidos); err != nil {
			return nil, fmt.Errorf("analytics.GetPedidosPorHora scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetVentasMetrics devuelve monto total y cantidad de pedidos del período.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *AnalyticsRepo) GetVentasMetrics(
	ctx context.Context,
	ferreteriaID string,
	desde, hasta time.Time,
) (total decimal.Decimal, pedidos int, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(p.total), 0) AS total,
	    COUNT(*)                  AS pedidos
	FROM pedidos p
	WHERE p.ferreteria_id = $1
	  AND p.created_at >= $2 AND p.created_at < $3
	  AND p.estado <> $4`

	err = r.pool.QueryRow(ctx, query, ferreteriaID, desde, hasta, entity.PedidoCancelado).
		Scan(&total, &pedidos)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("analytics.GetVentasMetrics: %w", err)
	}
	return total, pedidos, nil
}
