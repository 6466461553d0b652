package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

// respondError mapea errores de dominio a estados y códigos HTTP. Los errores
// no mapeados se loguean completos pero al cliente le llega un mensaje
// genérico, nunca el detalle interno.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Fields:  vErr.Fields,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrPhoneAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PHONE_EXISTS", Message: "el teléfono ya está registrado"})
	case errors.Is(err, domain.ErrCoffeeTypeExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COFFEE_TYPE_EXISTS", Message: "ya existe un tipo de café con ese nombre"})
	case errors.Is(err, domain.ErrCoffeeTypeInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COFFEE_TYPE_IN_USE", Message: "el tipo de café tiene stock asociado"})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("error no mapeado en handler")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
