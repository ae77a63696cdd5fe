package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/application/usecase"
	"github.com/ferreplus/ferreteria-api/internal/domain"
)

// FerreteriaHandler maneja las peticiones HTTP para Ferreteria.
// Lectura pública (directorio de tiendas); mutaciones solo admin.
type FerreteriaHandler struct {
	uc *usecase.FerreteriaUseCase
}

// NewFerreteriaHandler construye el handler.
func NewFerreteriaHandler(uc *usecase.FerreteriaUseCase) *FerreteriaHandler {
	return &FerreteriaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ferretería
// @Tags         ferreterias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFerreteriaRequest  true  "Datos de la ferretería"
// @Success      201   {object}  dto.FerreteriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ferreterias [post]
func (h *FerreteriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFerreteriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: dto.ValidationMessage(err)})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidRUT {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RUT", Message: "RUT inválido: dígito verificador no coincide"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una ferretería con ese RUT"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ferretería por ID
// @Tags         ferreterias
// @Produce      json
// @Param        id   path  string  true  "ID de la ferretería"
// @Success      200  {object}  dto.FerreteriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferreterias/{id} [get]
func (h *FerreteriaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ferretería no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ferreterías
// @Tags         ferreterias
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.FerreteriaListResponse
// @Router       /api/ferreterias [get]
func (h *FerreteriaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ferretería
// @Tags         ferreterias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ferretería"
// @Param        body  body  dto.UpdateFerreteriaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FerreteriaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ferreterias/{id} [put]
func (h *FerreteriaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateFerreteriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: dto.ValidationMessage(err)})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ferretería no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ferretería
// @Tags         ferreterias
// @Security     Bearer
// @Param        id   path  string  true  "ID de la ferretería"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ferreterias/{id} [delete]
func (h *FerreteriaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ferretería no encontrada"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la ferretería todavía tiene registros asociados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lee limit/offset de la query con los topes del listado.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
