package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lcondori/almacen-api/internal/application/dto"
	"github.com/lcondori/almacen-api/internal/domain"
	"github.com/lcondori/almacen-api/internal/domain/entity"
	domaininv "github.com/lcondori/almacen-api/internal/domain/inventory"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo. Stock y precio base se
// manejan vía movimientos y ChangePrice respectivamente; este caso de uso
// nunca los escribe (salvo el stock inicial en Create).
type ProductUseCase struct {
	repo     repository.ProductRepository
	policy   domaininv.StockPolicy
	soonDays int
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso. now puede ser nil (usa time.Now).
func NewProductUseCase(repo repository.ProductRepository, policy domaininv.StockPolicy, soonDays int, now func() time.Time) *ProductUseCase {
	if now == nil {
		now = time.Now
	}
	if soonDays <= 0 {
		soonDays = domaininv.DefaultExpiringSoonDays
	}
	return &ProductUseCase{repo: repo, policy: policy, soonDays: soonDays, now: now}
}

// Create crea un producto. El código debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.BasePrice.IsNegative() || in.PurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	if in.InitialStock.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	expiry, err := parseExpiry(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Code:          in.Code,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		UnitMeasureID: in.UnitMeasureID,
		SupplierID:    in.SupplierID,
		BasePrice:     in.BasePrice,
		PurchasePrice: in.PurchasePrice,
		CurrentStock:  in.InitialStock,
		MinStock:      in.MinStock,
		ExpiryDate:    expiry,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product), nil
}

// List lista productos con paginación. Por defecto solo activos.
func (uc *ProductUseCase) List(ctx context.Context, includeInactive bool, limit, offset int) (*dto.ProductListResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	list, err := uc.repo.List(includeInactive, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, uc.toResponse(p))
	}
	return &dto.ProductListResponse{Total: len(out), Products: out}, nil
}

// Update actualiza los campos editables del producto. Precio base y stock
// quedan fuera: sus caminos son ChangePrice y los movimientos.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Code != nil && *in.Code != product.Code {
		other, err := uc.repo.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
		product.Code = *in.Code
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.UnitMeasureID != nil {
		product.UnitMeasureID = *in.UnitMeasureID
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.ExpiryDate != nil {
		expiry, err := parseExpiry(in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.ExpiryDate = expiry
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// Deactivate marca el producto como inactivo (soft delete). Movimientos e
// historial de precios quedan intactos.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	asOf := uc.now()
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Code:            p.Code,
		Description:     p.Description,
		CategoryID:      p.CategoryID,
		UnitMeasureID:   p.UnitMeasureID,
		SupplierID:      p.SupplierID,
		BasePrice:       p.BasePrice,
		PurchasePrice:   p.PurchasePrice,
		CurrentStock:    p.CurrentStock,
		MinStock:        p.MinStock,
		ExpiryDate:      p.ExpiryDate,
		Active:          p.Active,
		LowStock:        uc.policy.IsLowStock(p),
		Expired:         domaininv.IsExpired(p.ExpiryDate, asOf),
		ExpiringSoon:    domaininv.IsExpiringSoon(p.ExpiryDate, asOf, uc.soonDays),
		DaysUntilExpiry: domaininv.DaysUntilExpiry(p.ExpiryDate, asOf),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// parseExpiry interpreta YYYY-MM-DD; cadena vacía limpia la fecha.
func parseExpiry(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
