package repository

import (
	"time"

	"github.com/lcondori/almacen-api/internal/domain/entity"
)

// PriceHistoryRepository define el puerto para el historial de precios.
// Solo inserta y consulta: las entradas nunca se editan ni se eliminan.
type PriceHistoryRepository interface {
	Create(entry *entity.PriceHistory) error
	// ListByProduct devuelve el historial de un producto ordenado del cambio
	// más reciente al más antiguo, opcionalmente acotado por fechas inclusivas.
	ListByProduct(productID string, from, to *time.Time) ([]*entity.PriceHistory, error)
}
