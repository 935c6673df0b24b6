package pricing

import (
	"context"

	"github.com/lcondori/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de producto e historial atados a esa tx. Garantiza que la
// actualización de precio y su entrada de historial se confirmen juntas.
type TxRunner interface {
	RunPricing(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		historyRepo repository.PriceHistoryRepository,
	) error) error
}
