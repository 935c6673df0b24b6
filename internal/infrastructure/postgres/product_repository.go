package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lcondori/almacen-api/internal/domain"
	"github.com/lcondori/almacen-api/internal/domain/entity"
	"github.com/lcondori/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, code, description, category_id, unit_measure_id, supplier_id,
		base_price, purchase_price, current_stock, min_stock, expiry_date, active, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. El código debe ser único.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Code, product.Description,
		product.CategoryID, product.UnitMeasureID, product.SupplierID,
		product.BasePrice, product.PurchasePrice, product.CurrentStock, product.MinStock,
		product.ExpiryDate, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByCode obtiene un producto por su código único. Devuelve nil si no existe.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get product by code")
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Serializa las mutaciones de stock y precio por producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update actualiza los campos editables. No toca current_stock ni base_price.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, code = $3, description = $4, category_id = $5,
			unit_measure_id = $6, supplier_id = $7, purchase_price = $8, min_stock = $9,
			expiry_date = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Code, product.Description, product.CategoryID,
		product.UnitMeasureID, product.SupplierID, product.PurchasePrice, product.MinStock,
		product.ExpiryDate, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe el saldo derivado. Solo el StockProjector lo invoca.
// El CHECK current_stock >= 0 de la tabla respalda el invariante.
func (r *ProductRepo) UpdateStock(productID string, stock decimal.Decimal) error {
	query := `UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, productID, stock)
	if err != nil {
		if isCheckViolation(err) {
			return &domain.NegativeStockError{ProductID: productID, Resulting: stock}
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBasePrice escribe el precio base. Solo ChangePrice lo invoca.
func (r *ProductRepo) UpdateBasePrice(productID string, price decimal.Decimal) error {
	query := `UPDATE products SET base_price = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, productID, price)
	if err != nil {
		return fmt.Errorf("update base price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con paginación; por defecto solo activos.
func (r *ProductRepo) List(includeInactive bool, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if !includeInactive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Deactivate marca el producto como inactivo (soft delete).
func (r *ProductRepo) Deactivate(id string) error {
	query := `UPDATE products SET active = false, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Code, &p.Description, &p.CategoryID, &p.UnitMeasureID, &p.SupplierID,
		&p.BasePrice, &p.PurchasePrice, &p.CurrentStock, &p.MinStock,
		&p.ExpiryDate, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
