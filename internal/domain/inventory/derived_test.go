package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/inventory"
)

var asOf = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

// Un producto que vence hoy todavía no está vencido: la comparación es
// estricta por día calendario.
func TestIsExpired_VenceHoyNoEstaVencido(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, inventory.IsExpired(datePtr(today), asOf))
}

func TestIsExpired_VencidoAyer(t *testing.T) {
	yesterday := asOf.AddDate(0, 0, -1)
	assert.True(t, inventory.IsExpired(datePtr(yesterday), asOf))
}

func TestIsExpired_SinFechaNuncaVence(t *testing.T) {
	assert.False(t, inventory.IsExpired(nil, asOf))
}

func TestDaysUntilExpiry_SinFechaDevuelveSentinela(t *testing.T) {
	assert.Equal(t, inventory.NoExpiryDays, inventory.DaysUntilExpiry(nil, asOf))
}

func TestDaysUntilExpiry_DiferenciaPorDiaCalendario(t *testing.T) {
	// La hora del día no cuenta: 23:59 de mañana sigue siendo 1 día
	tomorrow := time.Date(2025, 6, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, inventory.DaysUntilExpiry(datePtr(tomorrow), asOf))

	past := asOf.AddDate(0, 0, -3)
	assert.Equal(t, -3, inventory.DaysUntilExpiry(datePtr(past), asOf))
}

// Borde de la ventana: a +30 días es "pronto a vencer", a +31 ya no.
func TestIsExpiringSoon_BordeDeVentana(t *testing.T) {
	at30 := asOf.AddDate(0, 0, 30)
	at31 := asOf.AddDate(0, 0, 31)
	assert.True(t, inventory.IsExpiringSoon(datePtr(at30), asOf, 30))
	assert.False(t, inventory.IsExpiringSoon(datePtr(at31), asOf, 30))
}

func TestIsExpiringSoon_VencidoNoEsProntoAVencer(t *testing.T) {
	expired := asOf.AddDate(0, 0, -1)
	assert.False(t, inventory.IsExpiringSoon(datePtr(expired), asOf, 30))
}

func TestIsExpiringSoon_SinFechaNoAplica(t *testing.T) {
	assert.False(t, inventory.IsExpiringSoon(nil, asOf, 30))
}

func TestIsLowStock_UsaMinimoDelProducto(t *testing.T) {
	policy := inventory.StockPolicy{DefaultMinStock: decimal.NewFromInt(10)}

	p := &entity.Product{
		CurrentStock: decimal.NewFromInt(4),
		MinStock:     decimal.NewFromInt(5),
	}
	assert.True(t, policy.IsLowStock(p))

	p.CurrentStock = decimal.NewFromInt(5)
	assert.False(t, policy.IsLowStock(p), "igual al mínimo no es stock bajo")
}

func TestIsLowStock_SinMinimoAplicaDefault(t *testing.T) {
	policy := inventory.StockPolicy{DefaultMinStock: decimal.NewFromInt(10)}

	p := &entity.Product{CurrentStock: decimal.NewFromInt(9)}
	assert.True(t, policy.IsLowStock(p))

	p.CurrentStock = decimal.NewFromInt(10)
	assert.False(t, policy.IsLowStock(p))
}
