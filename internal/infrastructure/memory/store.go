// Package memory provee implementaciones en memoria de los puertos de
// persistencia. Sirve como driver para desarrollo/demos (DB_DRIVER=memory)
// y como sustrato de los tests de casos de uso, sin requerir PostgreSQL.
package memory

import (
	"sync"

	"github.com/lcondori/almacen-api/internal/domain/entity"
)

// Store contiene el estado compartido entre repos. Un RWMutex protege cada
// operación; las transacciones (ver TxRunner) se serializan entre sí y se
// revierten por snapshot.
type Store struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	moves    map[string]*entity.Movement
	history  []*entity.PriceHistory
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		moves:    make(map[string]*entity.Movement),
	}
}

// snapshot copia el estado completo para poder revertir una transacción.
func (s *Store) snapshot() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := NewStore()
	for id, p := range s.products {
		cp := *p
		snap.products[id] = &cp
	}
	for id, m := range s.moves {
		cp := *m
		snap.moves[id] = &cp
	}
	snap.history = make([]*entity.PriceHistory, len(s.history))
	for i, e := range s.history {
		cp := *e
		snap.history[i] = &cp
	}
	return snap
}

// restore repone el estado desde un snapshot.
func (s *Store) restore(snap *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.moves = snap.moves
	s.history = snap.history
}
