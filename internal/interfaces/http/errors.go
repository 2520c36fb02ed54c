package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP con el cuerpo {"error": mensaje}.
// Errores de negocio se exponen con su mensaje; lo inesperado es un 500 genérico
// sin detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMovementNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrProductInactive),
		errors.Is(err, domain.ErrUserInactive),
		errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
}

// parseBoolQuery interpreta un query param booleano opcional ("true"/"false").
func parseBoolQuery(c *fiber.Ctx, key string) *bool {
	switch c.Query(key) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}
