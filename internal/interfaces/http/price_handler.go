package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lcondori/almacen-api/internal/application/dto"
	"github.com/lcondori/almacen-api/internal/application/pricing"
	"github.com/lcondori/almacen-api/internal/domain/entity"
)

// PriceHandler maneja cambios de precio e historial.
type PriceHandler struct {
	uc *pricing.PriceUseCase
}

// NewPriceHandler construye el handler.
func NewPriceHandler(uc *pricing.PriceUseCase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// ChangePrice actualiza el precio base y registra el cambio en el historial.
// Un precio igual al vigente es no-op y responde 200 sin entrada nueva.
// PUT /api/products/:id/price
func (h *PriceHandler) ChangePrice(c *fiber.Ctx) error {
	var in dto.ChangePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.ChangePrice(c.Context(), c.Params("id"), in.NewPrice, Actor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	if entry == nil {
		return c.JSON(fiber.Map{"message": "precio sin cambios"})
	}
	return c.Status(fiber.StatusCreated).JSON(toPriceHistoryResponse(entry))
}

// History devuelve el historial de precios de un producto, más reciente
// primero, con rango de fechas opcional (YYYY-MM-DD, bordes inclusivos).
// GET /api/price-history/product/:id?from=&to=
func (h *PriceHandler) History(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha from inválida"})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha to inválida"})
	}
	list, err := h.uc.HistoryForProduct(c.Context(), c.Params("id"), from, to)
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]*dto.PriceHistoryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toPriceHistoryResponse(e))
	}
	return c.JSON(dto.PriceHistoryListResponse{Total: len(out), History: out})
}

func toPriceHistoryResponse(e *entity.PriceHistory) *dto.PriceHistoryResponse {
	return &dto.PriceHistoryResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		OldPrice:  e.OldPrice,
		NewPrice:  e.NewPrice,
		ChangedAt: e.ChangedAt,
		ChangedBy: e.ChangedBy,
	}
}

func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
