package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lcondori/almacen-api/internal/domain/entity"
)

// NoExpiryDays es el valor que devuelve DaysUntilExpiry cuando el producto
// no tiene fecha de vencimiento.
const NoExpiryDays = 999

// DefaultExpiringSoonDays es la ventana por defecto para "pronto a vencer".
const DefaultExpiringSoonDays = 30

// IsExpired indica si el producto está vencido a la fecha asOf.
// La comparación es estricta por día calendario: un producto que vence hoy
// todavía no está vencido.
func IsExpired(expiry *time.Time, asOf time.Time) bool {
	if expiry == nil {
		return false
	}
	return startOfDay(*expiry).Before(startOfDay(asOf))
}

// DaysUntilExpiry devuelve los días calendario que faltan para el
// vencimiento (negativo si ya venció). Sin fecha de vencimiento devuelve
// NoExpiryDays.
func DaysUntilExpiry(expiry *time.Time, asOf time.Time) int {
	if expiry == nil {
		return NoExpiryDays
	}
	diff := startOfDay(*expiry).Sub(startOfDay(asOf))
	return int(diff.Hours() / 24)
}

// IsExpiringSoon indica si el vencimiento cae dentro de la ventana
// (0 < días <= soonDays). Un producto ya vencido no está "pronto a vencer".
func IsExpiringSoon(expiry *time.Time, asOf time.Time, soonDays int) bool {
	d := DaysUntilExpiry(expiry, asOf)
	return d > 0 && d <= soonDays && d != NoExpiryDays
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StockPolicy agrupa los umbrales configurables de stock.
// DefaultMinStock reemplaza el mínimo cuando el producto no define uno.
type StockPolicy struct {
	DefaultMinStock decimal.Decimal
}

// IsLowStock indica si el stock actual está por debajo del mínimo del
// producto (o del default configurado cuando el producto no define mínimo).
func (p StockPolicy) IsLowStock(product *entity.Product) bool {
	min := product.MinStock
	if min.IsZero() {
		min = p.DefaultMinStock
	}
	return product.CurrentStock.LessThan(min)
}
