package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcondori/almacen-api/internal/application/catalog"
	"github.com/lcondori/almacen-api/internal/application/dto"
	"github.com/lcondori/almacen-api/internal/domain"
	domaininv "github.com/lcondori/almacen-api/internal/domain/inventory"
	"github.com/lcondori/almacen-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newUseCase() (*catalog.ProductUseCase, *memory.ProductRepo) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)
	policy := domaininv.StockPolicy{DefaultMinStock: decimal.NewFromInt(10)}
	return catalog.NewProductUseCase(repo, policy, 30, func() time.Time { return fixedNow }), repo
}

func createReq(code string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          "Leche entera 1L",
		Code:          code,
		CategoryID:    "cat-1",
		UnitMeasureID: "und",
		BasePrice:     decimal.NewFromInt(120),
		InitialStock:  decimal.NewFromInt(20),
		MinStock:      decimal.NewFromInt(5),
	}
}

func TestCreate_CodigoUnico(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, createReq("LECHE-1"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, createReq("LECHE-1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_PrecioNegativoRechazado(t *testing.T) {
	uc, _ := newUseCase()
	in := createReq("LECHE-2")
	in.BasePrice = decimal.NewFromInt(-1)

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

// El estado derivado se calcula al consultar, con la fecha de la consulta.
func TestCreate_EstadoDerivado(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	in := createReq("YOG-1")
	expiry := fixedNow.AddDate(0, 0, 10).Format("2006-01-02")
	in.ExpiryDate = &expiry
	in.InitialStock = decimal.NewFromInt(3)

	got, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.True(t, got.LowStock, "3 < mínimo 5")
	assert.False(t, got.Expired)
	assert.True(t, got.ExpiringSoon, "vence en 10 días con ventana de 30")
	assert.Equal(t, 10, got.DaysUntilExpiry)
}

func TestCreate_SinVencimientoUsaCentinela(t *testing.T) {
	uc, _ := newUseCase()

	got, err := uc.Create(context.Background(), createReq("SAL-1"))
	require.NoError(t, err)
	assert.False(t, got.Expired)
	assert.False(t, got.ExpiringSoon)
	assert.Equal(t, domaininv.NoExpiryDays, got.DaysUntilExpiry)
}

// Update nunca toca precio base ni stock; esos caminos son exclusivos de
// ChangePrice y de los movimientos.
func TestUpdate_NoTocaPrecioNiStock(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, createReq("ARR-1"))
	require.NoError(t, err)

	name := "Arroz extra 1kg"
	minStock := decimal.NewFromInt(8)
	got, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Name: &name, MinStock: &minStock})
	require.NoError(t, err)
	assert.Equal(t, "Arroz extra 1kg", got.Name)
	assert.True(t, got.MinStock.Equal(decimal.NewFromInt(8)))

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.BasePrice.Equal(decimal.NewFromInt(120)))
	assert.True(t, stored.CurrentStock.Equal(decimal.NewFromInt(20)))
}

func TestUpdate_CodigoDeOtroProductoRechazado(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, createReq("COD-A"))
	require.NoError(t, err)
	b, err := uc.Create(ctx, createReq("COD-B"))
	require.NoError(t, err)

	code := "COD-A"
	_, err = uc.Update(ctx, b.ID, dto.UpdateProductRequest{Code: &code})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeactivate_SoftDelete(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, createReq("DES-1"))
	require.NoError(t, err)
	require.NoError(t, uc.Deactivate(ctx, created.ID))

	// Sigue consultable por ID, solo sale de los listados por defecto
	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	list, err := uc.List(ctx, false, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestDeactivate_Inexistente(t *testing.T) {
	uc, _ := newUseCase()
	err := uc.Deactivate(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
