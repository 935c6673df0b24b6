package memory

import (
	"sort"
	"time"

	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

var _ repository.PriceHistoryRepository = (*PriceHistoryRepo)(nil)

// PriceHistoryRepo implementación en memoria de PriceHistoryRepository.
// Append-only, como su contraparte en PostgreSQL.
type PriceHistoryRepo struct {
	s *Store
}

// NewPriceHistoryRepository construye el repo sobre el store.
func NewPriceHistoryRepository(s *Store) *PriceHistoryRepo {
	return &PriceHistoryRepo{s: s}
}

func (r *PriceHistoryRepo) Create(entry *entity.PriceHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *entry
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *PriceHistoryRepo) ListByProduct(productID string, from, to *time.Time) ([]*entity.PriceHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.PriceHistory
	for _, e := range r.s.history {
		if e.ProductID != productID {
			continue
		}
		if from != nil && e.ChangedAt.Before(*from) {
			continue
		}
		if to != nil && e.ChangedAt.After(*to) {
			continue
		}
		cp := *e
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ChangedAt.After(list[j].ChangedAt) })
	return list, nil
}
