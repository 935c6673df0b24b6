package memory

import (
	"sort"

	"github.com/lcondori/almacen-api/internal/domain"
	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria de MovementRepository.
type MovementRepo struct {
	s *Store
}

// NewMovementRepository construye el repo sobre el store.
func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{s: s}
}

func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if movement.IdempotencyKey != "" {
		for _, m := range r.s.moves {
			if m.IdempotencyKey == movement.IdempotencyKey {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *movement
	r.s.moves[movement.ID] = &cp
	return nil
}

func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.moves[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *MovementRepo) GetByIdempotencyKey(key string) (*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.moves {
		if m.IdempotencyKey == key {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Movement
	for _, m := range r.s.moves {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.From != nil && m.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Date.After(*filter.To) {
			continue
		}
		cp := *m
		list = append(list, &cp)
	}
	// Más reciente primero; a igual fecha, orden estable por ID
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date.Equal(list[j].Date) {
			return list[i].ID > list[j].ID
		}
		return list[i].Date.After(list[j].Date)
	})
	if filter.Offset >= len(list) {
		return nil, nil
	}
	list = list[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(list) {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (r *MovementRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.moves[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.moves, id)
	return nil
}
