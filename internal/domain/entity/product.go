package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CurrentStock es un saldo derivado del libro de movimientos; solo el
// StockProjector lo escribe. Los productos nunca se borran: se desactivan
// con Active (soft delete) para conservar movimientos e historial de precios.
type Product struct {
	ID            string
	Name          string
	Code          string // código único
	Description   string
	CategoryID    string
	UnitMeasureID string
	SupplierID    *string
	BasePrice     decimal.Decimal // precio de venta; se modifica solo vía ChangePrice
	PurchasePrice decimal.Decimal
	CurrentStock  decimal.Decimal // invariante: >= 0
	MinStock      decimal.Decimal // umbral de stock bajo; 0 = usar el default configurado
	ExpiryDate    *time.Time      // nil = sin vencimiento
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
