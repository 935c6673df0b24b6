package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lcondori/almacen-api/internal/domain"
	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

// PriceUseCase aplica cambios de precio base y mantiene el historial
// inmutable. Es el único camino para modificar Product.BasePrice: el
// catálogo no acepta precio en sus updates, así la política de registro es
// una sola para todos los call sites.
type PriceUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	historyRepo repository.PriceHistoryRepository
	now         func() time.Time
}

// NewPriceUseCase construye el caso de uso. now puede ser nil (usa time.Now).
func NewPriceUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
	now func() time.Time,
) *PriceUseCase {
	if now == nil {
		now = time.Now
	}
	return &PriceUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		historyRepo: historyRepo,
		now:         now,
	}
}

// ChangePrice actualiza el precio base y agrega la entrada de historial con
// el precio vigente como OldPrice, todo en una transacción con la fila del
// producto bloqueada.
//
// Política de no-op: si el precio nuevo es igual al vigente no se registra
// nada y se devuelve (nil, nil). Es deliberado y uniforme: el historial
// refleja cambios reales, no reenvíos del mismo valor.
func (uc *PriceUseCase) ChangePrice(ctx context.Context, productID string, newPrice decimal.Decimal, actor string) (*entity.PriceHistory, error) {
	if newPrice.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	var entry *entity.PriceHistory
	err := uc.txRunner.RunPricing(ctx, func(
		productRepo repository.ProductRepository,
		historyRepo repository.PriceHistoryRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.BasePrice.Equal(newPrice) {
			return nil // no-op documentado
		}
		if err := productRepo.UpdateBasePrice(productID, newPrice); err != nil {
			return err
		}
		entry = &entity.PriceHistory{
			ID:        uuid.New().String(),
			ProductID: productID,
			OldPrice:  product.BasePrice,
			NewPrice:  newPrice,
			ChangedAt: uc.now(),
			ChangedBy: actor,
		}
		return historyRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// HistoryForProduct devuelve el historial completo del producto, del cambio
// más reciente al más antiguo. El límite superior del rango es inclusivo:
// una fecha fin se normaliza al final de su día.
func (uc *PriceUseCase) HistoryForProduct(ctx context.Context, productID string, from, to *time.Time) ([]*entity.PriceHistory, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if to != nil {
		end := endOfDay(*to)
		to = &end
	}
	return uc.historyRepo.ListByProduct(productID, from, to)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
