package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, in_stock, quantity, price, created_at, supplier_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.InStock,
		product.Quantity, product.Price, product.CreatedAt, product.SupplierID,
	)
	if err != nil {
		return translateProductErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE). Usar dentro de una tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) getOne(ctx context.Context, query, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
}

// ListBySupplier lista los productos de un proveedor.
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE supplier_id = $1 ORDER BY created_at, id`, supplierID)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
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

// Update actualiza los campos editables del producto (no cambia proveedor, cantidad ni created_at).
// La cantidad solo se escribe con UpdateQuantity.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, in_stock = $4, price = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.InStock, product.Price,
	)
	if err != nil {
		return translateProductErr("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity fija la cantidad (usado por el motor de stock dentro de la tx).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		if isOutOfRange(err) {
			return domain.ErrQuantityOverflow
		}
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina un producto; ON DELETE CASCADE elimina su historial.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.InStock, &p.Quantity, &p.Price, &p.CreatedAt, &p.SupplierID); err != nil {
		return nil, err
	}
	return &p, nil
}

func translateProductErr(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return domain.ErrSupplierNotFound
	case isCheckViolation(err), isOutOfRange(err):
		return domain.ErrInvalidInput
	}
	return fmt.Errorf("%s: %w", op, err)
}
