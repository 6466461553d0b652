package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
)

// validate instancia única del validador de DTOs (los tags `validate` de los
// structs de entrada).
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateBody parsea el body JSON y corre el validador. Devuelve la
// respuesta de error ya escrita, o nil si el DTO es válido.
func validateBody(c *fiber.Ctx, in any) error {
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		var invalid validator.ValidationErrors
		fields := make(map[string]string)
		if errors.As(err, &invalid) {
			for _, fe := range invalid {
				fields[fieldName(fe)] = fieldMessage(fe)
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Fields:  fields,
		})
	}
	return nil
}

// fieldName usa el nombre del campo en snake_case (convención de los tags json).
func fieldName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "numeric":
		return "debe contener solo dígitos"
	case "min":
		return "es demasiado corto (mínimo " + fe.Param() + ")"
	case "max":
		return "es demasiado largo (máximo " + fe.Param() + ")"
	case "uuid":
		return "debe ser un UUID válido"
	default:
		return "es inválido"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
