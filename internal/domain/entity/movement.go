package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "ENTRADA" // compra / ingreso de mercadería
	MovementTypeSalida  = "SALIDA"  // venta / egreso
	MovementTypeAjuste  = "AJUSTE"  // corrección manual con dirección explícita
)

// Dirección de un AJUSTE. ENTRADA y SALIDA tienen dirección fija;
// un AJUSTE siempre declara la suya, nunca se infiere.
const (
	DirectionIncrease = 1
	DirectionDecrease = -1
)

// Movement representa un evento que afecta stock, registrado en el libro.
// Inmutable una vez creado: no se edita; la única forma de deshacerlo es
// eliminarlo, lo que revierte el delta aplicado al producto.
type Movement struct {
	ID             string
	ProductID      string
	Type           string
	Quantity       decimal.Decimal // siempre > 0; el signo lo da Delta()
	Direction      int             // +1/-1, relevante solo para AJUSTE
	UnitPrice      decimal.Decimal // precio unitario al momento del movimiento
	ClientID       *string         // contraparte de una SALIDA
	SupplierID     *string         // contraparte de una ENTRADA
	Reason         string          // motivo, obligatorio
	Notes          string
	IdempotencyKey string // opcional; único cuando está presente
	Date           time.Time
	CreatedAt      time.Time
	CreatedBy      string
}

// Delta devuelve el efecto con signo sobre el stock del producto:
// ENTRADA suma, SALIDA resta, AJUSTE según su Direction.
func (m *Movement) Delta() decimal.Decimal {
	switch m.Type {
	case MovementTypeSalida:
		return m.Quantity.Neg()
	case MovementTypeAjuste:
		if m.Direction == DirectionDecrease {
			return m.Quantity.Neg()
		}
		return m.Quantity
	default:
		return m.Quantity
	}
}
