package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ferreplus/ferreteria-api/internal/application/analytics"
	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

// AnalyticsHandler expone la analítica de ventas de la ferretería del token.
type AnalyticsHandler struct {
	uc *analytics.VentasUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.VentasUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Ventas godoc
// @Summary      Serie de ventas agrupadas por período
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        bucket  query  string  false  "dia | semana | mes"  default(dia)
// @Param        desde   query  string  false  "Fecha inicio YYYY-MM-DD (default: hace 30 días)"
// @Param        hasta   query  string  false  "Fecha fin YYYY-MM-DD exclusiva (default: mañana)"
// @Success      200     {object}  dto.VentasSerieDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/analytics/ventas [get]
func (h *AnalyticsHandler) Ventas(c *fiber.Ctx) error {
	ferreteriaID := GetFerreteriaID(c)
	if ferreteriaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "ferreteria_id requerido"})
	}
	bucket := c.Query("bucket", repository.BucketDia)
	desde, hasta, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde/hasta deben ser fechas YYYY-MM-DD"})
	}
	out, ucErr := h.uc.GetVentasSerie(c.UserContext(), ferreteriaID, bucket, desde, hasta)
	if ucErr != nil {
		if ucErr == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bucket debe ser dia, semana o mes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: ucErr.Error()})
	}
	return c.JSON(out)
}

// TopProductos godoc
// @Summary      Productos más vendidos por unidades
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicio YYYY-MM-DD"
// @Param        hasta  query  string  false  "Fecha fin YYYY-MM-DD exclusiva"
// @Param        limit  query  int     false  "Tamaño del ranking"  default(5)
// @Success      200    {array}  dto.TopProductoDTO
// @Router       /api/analytics/top-productos [get]
func (h *AnalyticsHandler) TopProductos(c *fiber.Ctx) error {
	ferreteriaID := GetFerreteriaID(c)
	if ferreteriaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "ferreteria_id requerido"})
	}
	desde, hasta, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde/hasta deben ser fechas YYYY-MM-DD"})
	}
	limit := c.QueryInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}
	out, ucErr := h.uc.GetTopProductos(c.UserContext(), ferreteriaID, desde, hasta, limit)
	if ucErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: ucErr.Error()})
	}
	return c.JSON(out)
}

// PedidosPorHora godoc
// @Summary      Distribución de pedidos por hora del día
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicio YYYY-MM-DD"
// @Param        hasta  query  string  false  "Fecha fin YYYY-MM-DD exclusiva"
// @Success      200    {array}  dto.PedidosHoraDTO
// @Router       /api/analytics/horas [get]
func (h *AnalyticsHandler) PedidosPorHora(c *fiber.Ctx) error {
	ferreteriaID := GetFerreteriaID(c)
	if ferreteriaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "ferreteria_id requerido"})
	}
	desde, hasta, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde/hasta deben ser fechas YYYY-MM-DD"})
	}
	out, ucErr := h.uc.GetPedidosPorHora(c.UserContext(), ferreteriaID, desde, hasta)
	if ucErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: ucErr.Error()})
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Resumen del dashboard: ventas de hoy y del mes, top productos y hora pico
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumenDTO
// @Router       /api/analytics/resumen [get]
func (h *AnalyticsHandler) Resumen(c *fiber.Ctx) error {
	ferreteriaID := GetFerreteriaID(c)
	if ferreteriaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "ferreteria_id requerido"})
	}
	out, err := h.uc.GetResumen(c.UserContext(), ferreteriaID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// rangeParams lee desde/hasta de la query. Sin parámetros, el rango cubre los
// últimos 30 días hasta mañana (el límite superior es exclusivo).
func rangeParams(c *fiber.Ctx) (desde, hasta time.Time, err error) {
	now := time.Now()
	desde = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
	hasta = now.AddDate(0, 0, 1).Truncate(24 * time.Hour)

	if s := c.Query("desde"); s != "" {
		desde, err = time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if s := c.Query("hasta"); s != "" {
		hasta, err = time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return desde, hasta, nil
}
