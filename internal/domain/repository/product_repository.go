package repository

import (
	"github.com/shopspring/decimal"

	"github.com/lcondori/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// UpdateStock es de uso exclusivo del StockProjector; Update nunca toca
// CurrentStock ni BasePrice (precios vía ChangePrice, stock vía movimientos).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar las mutaciones de stock y precio por producto.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock decimal.Decimal) error
	UpdateBasePrice(productID string, price decimal.Decimal) error
	List(includeInactive bool, limit, offset int) ([]*entity.Product, error)
	Deactivate(id string) error
}
