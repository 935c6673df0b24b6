package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangePriceRequest body para PUT /api/products/:id/price.
type ChangePriceRequest struct {
	NewPrice decimal.Decimal `json:"new_price"`
}

// PriceHistoryResponse entrada del historial de precios.
type PriceHistoryResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	OldPrice  decimal.Decimal `json:"old_price"`
	NewPrice  decimal.Decimal `json:"new_price"`
	ChangedAt time.Time       `json:"changed_at"`
	ChangedBy string          `json:"changed_by"`
}

// PriceHistoryListResponse listado con total.
type PriceHistoryListResponse struct {
	Total   int                     `json:"total"`
	History []*PriceHistoryResponse `json:"history"`
}
