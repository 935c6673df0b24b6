package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lcondori/almacen-api/internal/application/dto"
	"github.com/lcondori/almacen-api/internal/domain"
)

var validate = validator.New()

// Actor devuelve el usuario que ejecuta la operación. El core no valida
// sesiones: el actor llega explícito desde la capa externa (header
// X-Usuario o query usuario).
func Actor(c *fiber.Ctx) string {
	if a := c.Get("X-Usuario"); a != "" {
		return a
	}
	if a := c.Query("usuario"); a != "" {
		return a
	}
	return "admin"
}

// errorResponse mapea errores de dominio a códigos HTTP. Un stock
// insuficiente incluye la cantidad disponible para que el caller ajuste.
func errorResponse(c *fiber.Ctx, err error) error {
	var insuff *domain.InsufficientStockError
	switch {
	case errors.As(err, &insuff):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":      "INSUFFICIENT_STOCK",
			"message":   insuff.Error(),
			"available": insuff.Available,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrInvalidPrice):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRICE", Message: "precio inválido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNegativeStock):
		// Falla de consistencia interna, nunca un error de validación del caller
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STOCK_CONSISTENCY", Message: "inconsistencia de stock detectada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
