package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistory registra un cambio de precio base de un producto.
// Append-only: nunca se edita ni se elimina mientras el producto exista.
type PriceHistory struct {
	ID        string
	ProductID string
	OldPrice  decimal.Decimal // precio vigente antes del cambio
	NewPrice  decimal.Decimal
	ChangedAt time.Time
	ChangedBy string
}
