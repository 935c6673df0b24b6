package memory

import (
	"context"
	"sync"

	"github.com/lcondori/almacen-api/internal/application/inventory"
	"github.com/lcondori/almacen-api/internal/application/pricing"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ pricing.TxRunner = (*TxRunner)(nil)

// TxRunner emula las transacciones del driver postgres: serializa las
// escrituras con un mutex (equivalente grueso del lock de fila) y revierte
// por snapshot si el callback falla. Las lecturas fuera de transacción no
// se bloquean, igual que con snapshot isolation.
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos del libro de movimientos; revierte todo si falla.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	snap := r.store.snapshot()
	if err := fn(NewMovementRepository(r.store), NewProductRepository(r.store)); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

// RunPricing ejecuta fn con repos de precio e historial; revierte si falla.
func (r *TxRunner) RunPricing(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	snap := r.store.snapshot()
	if err := fn(NewProductRepository(r.store), NewPriceHistoryRepository(r.store)); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
