// Package analytics contiene los casos de uso de analítica de pedidos del
// portal: series de ventas, ranking de productos y distribución horaria.
// Reemplaza las reducciones que el dashboard hacía en el navegador.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

const resumenTopProductos = 5 // productos en el widget del resumen

// VentasUseCase consultas de analítica, siempre acotadas a una ferretería.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a la tabla de pedidos; delega todo en el repositorio.
type VentasUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewVentasUseCase construye el caso de uso.
func NewVentasUseCase(analyticsRepo repository.AnalyticsRepository) *VentasUseCase {
	return &VentasUseCase{analyticsRepo: analyticsRepo}
}

// GetVentasSerie devuelve la serie de ventas agrupada por día, semana o mes.
// ErrInvalidInput con bucket desconocido o rango invertido.
func (uc *VentasUseCase) GetVentasSerie(ctx context.Context, ferreteriaID, bucket string, desde, hasta time.Time) (*dto.VentasSerieDTO, error) {
	switch bucket {
	case repository.BucketDia, repository.BucketSemana, repository.BucketMes:
	default:
		return nil, domain.ErrInvalidInput
	}
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.analyticsRepo.GetVentasPorPeriodo(ctx, ferreteriaID, bucket, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("analytics: serie de ventas: %w", err)
	}
	out := &dto.VentasSerieDTO{Bucket: bucket, Puntos: make([]dto.VentaBucketDTO, 0, len(rows))}
	for _, r := range rows {
		out.Puntos = append(out.Puntos, dto.VentaBucketDTO{
			Periodo: FormatPeriodo(bucket, r.Periodo),
			Total:   r.Total.Round(2),
			Pedidos: r.Pedidos,
		})
	}
	return out, nil
}

// GetTopProductos devuelve los `limit` productos con más unidades vendidas.
func (uc *VentasUseCase) GetTopProductos(ctx context.Context, ferreteriaID string, desde, hasta time.Time, limit int) ([]dto.TopProductoDTO, error) {
	if limit <= 0 {
		limit = resumenTopProductos
	}
	rows, err := uc.analyticsRepo.GetTopProductos(ctx, ferreteriaID, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics: top productos: %w", err)
	}
	return toTopProductoDTOs(rows), nil
}

// GetPedidosPorHora devuelve la distribución de pedidos por hora del día (0-23).
func (uc *VentasUseCase) GetPedidosPorHora(ctx context.Context, ferreteriaID string, desde, hasta time.Time) ([]dto.PedidosHoraDTO, error) {
	rows, err := uc.analyticsRepo.GetPedidosPorHora(ctx, ferreteriaID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("analytics: pedidos por hora: %w", err)
	}
	out := make([]dto.PedidosHoraDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PedidosHoraDTO{Hora: r.Hora, Pedidos: r.Pedidos})
	}
	return out, nil
}

// GetResumen construye el resumen del dashboard para la ferretería.
//
// Tres llamadas en paralelo:
//  1. GetVentasMetrics(hoy)  → VentasHoy + PedidosHoy
//  2. GetVentasMetrics(mes)  → VentasMes + PedidosMes
//  3. GetTopProductos(mes)   → TopProductos
//
// La hora pico se calcula sobre el mes en curso después del fan-out.
func (uc *VentasUseCase) GetResumen(ctx context.Context, ferreteriaID string) (*dto.ResumenDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	hoyInicio := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hoyFin := hoyInicio.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	mesInicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	mesFin := hoyFin

	type metricsResult struct {
		total   dto.VentaBucketDTO
		err     error
		pedidos int
	}
	type topResult struct {
		rows []repository.TopProductoResult
		err  error
	}

	hoyCh := make(chan metricsResult, 1)
	mesCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		total, pedidos, err := uc.analyticsRepo.GetVentasMetrics(ctx, ferreteriaID, hoyInicio, hoyFin)
		hoyCh <- metricsResult{total: dto.VentaBucketDTO{Total: total}, pedidos: pedidos, err: err}
	}()
	go func() {
		total, pedidos, err := uc.analyticsRepo.GetVentasMetrics(ctx, ferreteriaID, mesInicio, mesFin)
		mesCh <- metricsResult{total: dto.VentaBucketDTO{Total: total}, pedidos: pedidos, err: err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopProductos(ctx, ferreteriaID, mesInicio, mesFin, resumenTopProductos)
		topCh <- topResult{rows: rows, err: err}
	}()

	hoy := <-hoyCh
	mes := <-mesCh
	top := <-topCh

	if hoy.err != nil {
		return nil, fmt.Errorf("analytics: métricas de hoy: %w", hoy.err)
	}
	if mes.err != nil {
		return nil, fmt.Errorf("analytics: métricas del mes: %w", mes.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("analytics: top productos: %w", top.err)
	}

	horas, err := uc.analyticsRepo.GetPedidosPorHora(ctx, ferreteriaID, mesInicio, mesFin)
	if err != nil {
		return nil, fmt.Errorf("analytics: hora pico: %w", err)
	}
	var pico *dto.PedidosHoraDTO
	for _, h := range horas {
		if pico == nil || h.Pedidos > pico.Pedidos {
			pico = &dto.PedidosHoraDTO{Hora: h.Hora, Pedidos: h.Pedidos}
		}
	}

	return &dto.ResumenDTO{
		VentasHoy:    hoy.total.Total.Round(2),
		PedidosHoy:   hoy.pedidos,
		VentasMes:    mes.total.Total.Round(2),
		PedidosMes:   mes.pedidos,
		TopProductos: toTopProductoDTOs(top.rows),
		HoraPico:     pico,
		Etiqueta:     mesLabel(now),
	}, nil
}

// FormatPeriodo formatea el inicio del bucket según su granularidad:
// día "2026-08-29", semana ISO "2026-W35", mes "2026-08".
func FormatPeriodo(bucket string, t time.Time) string {
	switch bucket {
	case repository.BucketSemana:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case repository.BucketMes:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

func toTopProductoDTOs(rows []repository.TopProductoResult) []dto.TopProductoDTO {
	out := make([]dto.TopProductoDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductoDTO{
			ProductoID:      r.ProductoID,
			SKU:             r.SKU,
			Nombre:          r.Nombre,
			CantidadVendida: r.CantidadVendida,
			TotalVendido:    r.TotalVendido.Round(2),
		})
	}
	return out
}

// mesLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func mesLabel(t time.Time) string {
	meses := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}
