package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

func TestRun_RevierteTodoSiElCallbackFalla(t *testing.T) {
	store := NewStore()
	productRepo := NewProductRepository(store)
	require.NoError(t, productRepo.Create(&entity.Product{
		ID:           "p1",
		Name:         "Fideos 500g",
		Code:         "FID-1",
		CurrentStock: decimal.NewFromInt(10),
		Active:       true,
	}))

	boom := errors.New("boom")
	err := NewTxRunner(store).Run(context.Background(), func(
		movRepo repository.MovementRepository,
		prodRepo repository.ProductRepository,
	) error {
		if err := prodRepo.UpdateStock("p1", decimal.NewFromInt(99)); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.Movement{
			ID:        "m1",
			ProductID: "p1",
			Type:      entity.MovementTypeEntrada,
			Quantity:  decimal.NewFromInt(89),
			Direction: entity.DirectionIncrease,
			Reason:    "compra",
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Ni el stock ni el movimiento sobreviven al rollback
	p, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.CurrentStock.Equal(decimal.NewFromInt(10)))

	m, err := NewMovementRepository(store).GetByID("m1")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestRun_CommitPersiste(t *testing.T) {
	store := NewStore()
	productRepo := NewProductRepository(store)
	require.NoError(t, productRepo.Create(&entity.Product{
		ID:           "p1",
		Name:         "Fideos 500g",
		Code:         "FID-1",
		CurrentStock: decimal.NewFromInt(10),
		Active:       true,
	}))

	err := NewTxRunner(store).Run(context.Background(), func(
		movRepo repository.MovementRepository,
		prodRepo repository.ProductRepository,
	) error {
		return prodRepo.UpdateStock("p1", decimal.NewFromInt(4))
	})
	require.NoError(t, err)

	p, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.CurrentStock.Equal(decimal.NewFromInt(4)))
}
