package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lcondori/almacen-api/internal/application/dto"
	"github.com/lcondori/almacen-api/internal/application/inventory"
	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register registra un movimiento (ENTRADA, SALIDA o AJUSTE).
// POST /api/movements
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	mov, err := h.uc.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID:      in.ProductID,
		Type:           in.Type,
		Quantity:       in.Quantity,
		Direction:      in.Direction,
		UnitPrice:      in.UnitPrice,
		ClientID:       in.ClientID,
		SupplierID:     in.SupplierID,
		Reason:         in.Reason,
		Notes:          in.Notes,
		IdempotencyKey: in.IdempotencyKey,
		Actor:          Actor(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List lista movimientos, más recientes primero.
// GET /api/movements?type=&product_id=&limit=&offset=
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		Type:      c.Query("type"),
		ProductID: c.Query("product_id"),
		Limit:     c.QueryInt("limit", 100),
		Offset:    c.QueryInt("offset", 0),
	}
	list, err := h.uc.ListMovements(c.Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{Total: len(out), Movements: out})
}

// Delete revierte y elimina un movimiento.
// DELETE /api/movements/:id
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento revertido"})
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Direction:  m.Direction,
		UnitPrice:  m.UnitPrice,
		ClientID:   m.ClientID,
		SupplierID: m.SupplierID,
		Reason:     m.Reason,
		Notes:      m.Notes,
		Date:       m.Date,
		CreatedBy:  m.CreatedBy,
	}
}
