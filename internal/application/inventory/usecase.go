package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lcondori/almacen-api/internal/domain"
	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
	"github.com/lcondori/almacen-api/pkg/logger"
)

// MovementUseCase registra, revierte y lista movimientos de inventario.
// Cada mutación corre en una transacción con bloqueo de fila por producto
// (SELECT FOR UPDATE), de modo que dos SALIDAs concurrentes no puedan pasar
// ambas el chequeo de suficiencia.
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	projector    StockProjector
	log          *logger.Logger
	now          func() time.Time
}

// NewMovementUseCase construye el caso de uso. now puede ser nil (usa time.Now).
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	log *logger.Logger,
	now func() time.Time,
) *MovementUseCase {
	if now == nil {
		now = time.Now
	}
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		log:          log,
		now:          now,
	}
}

// MovementInput entrada para registrar un movimiento.
// Quantity siempre positiva; para AJUSTE la dirección es obligatoria y
// explícita (DirectionIncrease o DirectionDecrease), nunca se infiere.
type MovementInput struct {
	ProductID      string
	Type           string
	Quantity       decimal.Decimal
	Direction      int
	UnitPrice      decimal.Decimal
	ClientID       *string
	SupplierID     *string
	Reason         string
	Notes          string
	IdempotencyKey string
	Actor          string
}

func (in *MovementInput) validate() error {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Reason) == "" {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() {
		return domain.ErrInvalidPrice
	}
	switch in.Type {
	case entity.MovementTypeSalida:
		// Una SALIDA exige cliente como contraparte
		if in.ClientID == nil || *in.ClientID == "" {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeEntrada:
		// Una ENTRADA exige proveedor como contraparte
		if in.SupplierID == nil || *in.SupplierID == "" {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeAjuste:
		if in.Direction != entity.DirectionIncrease && in.Direction != entity.DirectionDecrease {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// RegisterMovement valida la entrada, y en una sola transacción verifica la
// suficiencia de stock, aplica el delta vía StockProjector y persiste el
// movimiento. Si IdempotencyKey ya fue usada devuelve el movimiento original
// sin re-aplicar el delta (reintentos seguros).
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" {
		existing, err := uc.movementRepo.GetByIdempotencyKey(input.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	mov := &entity.Movement{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		Type:           input.Type,
		Quantity:       input.Quantity,
		Direction:      directionFor(input.Type, input.Direction),
		UnitPrice:      input.UnitPrice,
		ClientID:       input.ClientID,
		SupplierID:     input.SupplierID,
		Reason:         strings.TrimSpace(input.Reason),
		Notes:          input.Notes,
		IdempotencyKey: input.IdempotencyKey,
		Date:           now,
		CreatedAt:      now,
		CreatedBy:      input.Actor,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := uc.applyDelta(productRepo, mov.ProductID, mov.Delta()); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			// La clave de idempotencia pudo insertarse en paralelo
			if errors.Is(err, domain.ErrDuplicate) && mov.IdempotencyKey != "" {
				return domain.ErrDuplicate
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) && input.IdempotencyKey != "" {
			return uc.movementRepo.GetByIdempotencyKey(input.IdempotencyKey)
		}
		return nil, err
	}
	return mov, nil
}

// DeleteMovement elimina un movimiento aplicando primero el delta inverso
// (la reversión de una ENTRADA puede a su vez fallar por stock insuficiente
// si lo ingresado ya salió). Falla con ErrNotFound si el ID no existe.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if err := uc.applyDelta(productRepo, mov.ProductID, mov.Delta().Neg()); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}

// applyDelta verifica suficiencia bajo el lock de fila y delega en el
// proyector. Un NegativeStockError aquí significa que el chequeo previo
// falló: se loguea como falla de consistencia, no como validación.
func (uc *MovementUseCase) applyDelta(productRepo repository.ProductRepository, productID string, delta decimal.Decimal) error {
	if delta.IsNegative() {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if delta.Neg().GreaterThan(product.CurrentStock) {
			return &domain.InsufficientStockError{
				ProductID: productID,
				Available: product.CurrentStock,
				Requested: delta.Neg(),
			}
		}
	}
	_, err := uc.projector.ApplyDelta(productRepo, productID, delta)
	if err != nil && errors.Is(err, domain.ErrNegativeStock) && uc.log != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Msg("invariante de stock violado")
	}
	return err
}

// ListMovements devuelve movimientos ordenados del más reciente al más
// antiguo, con filtros opcionales por tipo y producto.
func (uc *MovementUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	return uc.movementRepo.List(filter)
}

// directionFor fija la dirección implícita de ENTRADA (+1) y SALIDA (-1);
// para AJUSTE respeta la declarada por el caller.
func directionFor(movType string, declared int) int {
	switch movType {
	case entity.MovementTypeEntrada:
		return entity.DirectionIncrease
	case entity.MovementTypeSalida:
		return entity.DirectionDecrease
	default:
		return declared
	}
}
