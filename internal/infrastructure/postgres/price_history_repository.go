package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

var _ repository.PriceHistoryRepository = (*PriceHistoryRepo)(nil)

// PriceHistoryRepo implementación de PriceHistoryRepository sobre PostgreSQL.
// Solo INSERT y SELECT: la tabla no tiene camino de UPDATE ni DELETE.
type PriceHistoryRepo struct {
	q Querier
}

// NewPriceHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceHistoryRepository(q Querier) *PriceHistoryRepo {
	return &PriceHistoryRepo{q: q}
}

// Create agrega una entrada al historial.
func (r *PriceHistoryRepo) Create(entry *entity.PriceHistory) error {
	query := `
		INSERT INTO price_history (id, product_id, old_price, new_price, changed_at, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.OldPrice, entry.NewPrice, entry.ChangedAt, entry.ChangedBy,
	)
	if err != nil {
		return fmt.Errorf("create price history: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial del producto, más reciente primero,
// opcionalmente acotado por fechas (bordes inclusivos).
func (r *PriceHistoryRepo) ListByProduct(productID string, from, to *time.Time) ([]*entity.PriceHistory, error) {
	query := `
		SELECT id, product_id, old_price, new_price, changed_at, changed_by
		FROM price_history WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND changed_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND changed_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY changed_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceHistory
	for rows.Next() {
		var e entity.PriceHistory
		if err := rows.Scan(&e.ID, &e.ProductID, &e.OldPrice, &e.NewPrice, &e.ChangedAt, &e.ChangedBy); err != nil {
			return nil, fmt.Errorf("scan price history: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
