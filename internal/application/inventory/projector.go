package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/lcondori/almacen-api/internal/domain"
	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

// StockProjector es el único escritor de Product.CurrentStock. Mantiene el
// saldo denormalizado en sincronía con el libro de movimientos y hace
// cumplir el invariante stock >= 0.
//
// Debe invocarse con un ProductRepository atado a la misma transacción que
// persiste (o elimina) el movimiento.
type StockProjector struct{}

// ApplyDelta bloquea la fila del producto, suma el delta con signo y
// persiste el nuevo saldo. Si el resultado fuera negativo devuelve
// NegativeStockError sin modificar el producto; el chequeo de suficiencia
// del libro debió rechazar antes, así que esto es una falla de consistencia.
func (StockProjector) ApplyDelta(productRepo repository.ProductRepository, productID string, delta decimal.Decimal) (*entity.Product, error) {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	newStock := product.CurrentStock.Add(delta)
	if newStock.IsNegative() {
		return nil, &domain.NegativeStockError{ProductID: productID, Resulting: newStock}
	}
	if err := productRepo.UpdateStock(productID, newStock); err != nil {
		return nil, err
	}
	product.CurrentStock = newStock
	return product, nil
}
