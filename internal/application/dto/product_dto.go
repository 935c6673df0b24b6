package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// InitialStock es el stock de partida; después solo lo mueven movimientos.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	Code          string          `json:"code" validate:"required"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id" validate:"required"`
	UnitMeasureID string          `json:"unit_measure_id" validate:"required"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	BasePrice     decimal.Decimal `json:"base_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	InitialStock  decimal.Decimal `json:"initial_stock"`
	MinStock      decimal.Decimal `json:"min_stock"`
	ExpiryDate    *string         `json:"expiry_date,omitempty"` // YYYY-MM-DD
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no cambian.
// No admite BasePrice (vía ChangePrice) ni stock (vía movimientos).
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Code          *string          `json:"code,omitempty"`
	Description   *string          `json:"description,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	UnitMeasureID *string          `json:"unit_measure_id,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	MinStock      *decimal.Decimal `json:"min_stock,omitempty"`
	ExpiryDate    *string          `json:"expiry_date,omitempty"` // YYYY-MM-DD; "" limpia la fecha
}

// ProductResponse respuesta de producto con el estado derivado calculado
// al momento de la consulta (stock bajo, vencimiento).
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"category_id"`
	UnitMeasureID   string          `json:"unit_measure_id"`
	SupplierID      *string         `json:"supplier_id,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
	MinStock        decimal.Decimal `json:"min_stock"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	Active          bool            `json:"active"`
	LowStock        bool            `json:"low_stock"`
	Expired         bool            `json:"expired"`
	ExpiringSoon    bool            `json:"expiring_soon"`
	DaysUntilExpiry int             `json:"days_until_expiry"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse listado con total.
type ProductListResponse struct {
	Total    int                `json:"total"`
	Products []*ProductResponse `json:"products"`
}
