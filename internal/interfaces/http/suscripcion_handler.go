package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/application/usecase"
	"github.com/ferreplus/ferreteria-api/internal/domain"
)

// SuscripcionHandler maneja planes y suscripciones (protegido).
type SuscripcionHandler struct {
	uc *usecase.SuscripcionUseCase
}

// NewSuscripcionHandler construye el handler.
func NewSuscripcionHandler(uc *usecase.SuscripcionUseCase) *SuscripcionHandler {
	return &SuscripcionHandler{uc: uc}
}

// ListPlanes godoc
// @Summary      Listar planes disponibles
// @Tags         suscripciones
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/planes [get]
func (h *SuscripcionHandler) ListPlanes(c *fiber.Ctx) error {
	out, err := h.uc.ListPlanes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetActiva godoc
// @Summary      Consultar la suscripción activa de una ferretería
// @Description  POST con cuerpo por compatibilidad con el cliente existente. Solo se puede consultar la ferretería del token.
// @Tags         suscripciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GetSuscripcionRequest  true  "ferreteria_id"
// @Success      200   {object}  dto.SuscripcionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suscripcion/get [post]
func (h *SuscripcionHandler) GetActiva(c *fiber.Ctx) error {
	var in dto.GetSuscripcionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: dto.ValidationMessage(err)})
	}
	// La autorización se decide aquí, no en el cliente: el body debe coincidir
	// con la ferretería del token.
	if in.FerreteriaID != GetFerreteriaID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar la suscripción de su ferretería"})
	}
	out, err := h.uc.GetActiva(in.FerreteriaID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la ferretería no tiene suscripción activa"})
	}
	return c.JSON(out)
}

// Suscribir godoc
// @Summary      Suscribir la ferretería del token a un plan
// @Tags         suscripciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSuscripcionRequest  true  "plan_id y meses"
// @Success      201   {object}  dto.SuscripcionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suscripcion [post]
func (h *SuscripcionHandler) Suscribir(c *fiber.Ctx) error {
	ferreteriaID := GetFerreteriaID(c)
	if ferreteriaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "ferreteria_id requerido"})
	}
	var in dto.CreateSuscripcionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: dto.ValidationMessage(err)})
	}
	out, err := h.uc.Suscribir(ferreteriaID, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLAN_NOT_FOUND", Message: "el plan no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
