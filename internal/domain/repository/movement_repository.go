package repository

import (
	"time"

	"github.com/lcondori/almacen-api/internal/domain/entity"
)

// MovementFilter restringe los listados de movimientos. Campos vacíos no filtran.
type MovementFilter struct {
	Type      string
	ProductID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Create y Delete solo se invocan dentro de la transacción que
// aplica (o revierte) el delta de stock correspondiente.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	GetByIdempotencyKey(key string) (*entity.Movement, error)
	// List devuelve movimientos ordenados por fecha descendente.
	List(filter MovementFilter) ([]*entity.Movement, error)
	Delete(id string) error
}
