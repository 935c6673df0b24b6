package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidPrice      = errors.New("precio inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNegativeStock     = errors.New("stock negativo")
)

// InsufficientStockError rechaza una SALIDA (o AJUSTE negativo) que excede
// el stock disponible. Lleva la cantidad disponible para que el caller
// pueda ajustar la operación.
type InsufficientStockError struct {
	ProductID string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: disponible %s, solicitado %s",
		e.ProductID, e.Available.String(), e.Requested.String())
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// NegativeStockError señala una violación del invariante stock >= 0 que el
// chequeo de suficiencia debió impedir. Es una falla de consistencia interna,
// no un error de validación ordinario.
type NegativeStockError struct {
	ProductID string
	Resulting decimal.Decimal
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("stock resultante negativo para producto %s: %s",
		e.ProductID, e.Resulting.String())
}

// Is permite errors.Is(err, ErrNegativeStock).
func (e *NegativeStockError) Is(target error) bool {
	return target == ErrNegativeStock
}
