package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements.
// Quantity siempre positiva. Para AJUSTE, direction es obligatoria (+1/-1);
// para ENTRADA y SALIDA se ignora. client_id acompaña una SALIDA y
// supplier_id una ENTRADA.
type RegisterMovementRequest struct {
	ProductID      string          `json:"product_id" validate:"required"`
	Type           string          `json:"type" validate:"required,oneof=ENTRADA SALIDA AJUSTE"`
	Quantity       decimal.Decimal `json:"quantity"`
	Direction      int             `json:"direction,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	ClientID       *string         `json:"client_id,omitempty"`
	SupplierID     *string         `json:"supplier_id,omitempty"`
	Reason         string          `json:"reason" validate:"required"`
	Notes          string          `json:"notes,omitempty"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
}

// MovementResponse respuesta de movimiento.
type MovementResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Direction  int             `json:"direction"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ClientID   *string         `json:"client_id,omitempty"`
	SupplierID *string         `json:"supplier_id,omitempty"`
	Reason     string          `json:"reason"`
	Notes      string          `json:"notes,omitempty"`
	Date       time.Time       `json:"date"`
	CreatedBy  string          `json:"created_by"`
}

// MovementListResponse listado con total.
type MovementListResponse struct {
	Total     int                 `json:"total"`
	Movements []*MovementResponse `json:"movements"`
}
