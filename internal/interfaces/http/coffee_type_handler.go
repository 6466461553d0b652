package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/catalog"
	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

// CoffeeTypeHandler administración del catálogo de tipos de café (admin).
type CoffeeTypeHandler struct {
	uc  *catalog.CatalogUseCase
	log *logger.Logger
}

// NewCoffeeTypeHandler construye el handler de tipos de café.
func NewCoffeeTypeHandler(uc *catalog.CatalogUseCase, log *logger.Logger) *CoffeeTypeHandler {
	return &CoffeeTypeHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear tipo de café
// @Tags         coffee-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCoffeeTypeRequest  true  "name"
// @Success      201   {object}  dto.CoffeeTypeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/coffee-types [post]
func (h *CoffeeTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCoffeeTypeRequest
	if err := validateBody(c, &in); err != nil {
		return err
	}
	ct, err := h.uc.CreateCoffeeType(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("coffee_type_id", ct.ID).Str("name", ct.Name).Msg("tipo de café creado")
	return c.Status(fiber.StatusCreated).JSON(ct)
}

// Rename godoc
// @Summary      Renombrar tipo de café
// @Tags         coffee-types
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del tipo"
// @Param        body  body  dto.SaveCoffeeTypeRequest  true  "name"
// @Success      200   {object}  dto.CoffeeTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/coffee-types/{id} [put]
func (h *CoffeeTypeHandler) Rename(c *fiber.Ctx) error {
	var in dto.SaveCoffeeTypeRequest
	if err := validateBody(c, &in); err != nil {
		return err
	}
	ct, err := h.uc.RenameCoffeeType(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(ct)
}

// Delete godoc
// @Summary      Eliminar tipo de café sin stock asociado
// @Tags         coffee-types
// @Produce      json
// @Param        id  path  string  true  "ID del tipo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/coffee-types/{id} [delete]
func (h *CoffeeTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteCoffeeType(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tipo de café eliminado"})
}

// List godoc
// @Summary      Listar tipos de café
// @Tags         coffee-types
// @Produce      json
// @Success      200  {object}  dto.CoffeeTypeListResponse
// @Router       /api/catalog/coffee-types [get]
func (h *CoffeeTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCoffeeTypes(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Locations godoc
// @Summary      Ubicaciones con stock disponible
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/catalog/locations [get]
func (h *CoffeeTypeHandler) Locations(c *fiber.Ctx) error {
	out, err := h.uc.ListLocations(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
