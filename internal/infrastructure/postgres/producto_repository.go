package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, ferreteria_id, COALESCE(categoria_id, ''), sku, nombre, precio, stock, imagen_url, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, ferreteria_id, categoria_id, sku, nombre, precio, stock, imagen_url, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.FerreteriaID, p.CategoriaID, p.SKU, p.Nombre,
		p.Precio, p.Stock, p.ImagenURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto")
}

// GetByFerreteriaAndSKU obtiene un producto por ferretería y SKU.
func (r *ProductoRepo) GetByFerreteriaAndSKU(ferreteriaID, sku string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE ferreteria_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ferreteriaID, sku), "get producto by sku")
}

// Update actualiza un producto existente, incluido el stock absoluto.
// Los deltas transaccionales de una venta van por AjustarStock.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET categoria_id = NULLIF($2, ''), nombre = $3, precio = $4, stock = $5, imagen_url = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CategoriaID, p.Nombre, p.Precio, p.Stock, p.ImagenURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// AjustarStock suma delta (negativo al vender) al stock del producto.
// El CHECK stock >= 0 de la tabla corta la venta si el stock quedó corto
// entre la validación y el commit.
func (r *ProductoRepo) AjustarStock(productoID string, delta int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		productoID, delta,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrStockInsuficiente
		}
		return fmt.Errorf("ajustar stock: %w", err)
	}
	return nil
}

// ListByFerreteria lista productos por ferretería con paginación.
func (r *ProductoRepo) ListByFerreteria(ferreteriaID string, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + ` FROM productos
		WHERE ferreteria_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ferreteriaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.FerreteriaID, &p.CategoriaID, &p.SKU, &p.Nombre,
			&p.Precio, &p.Stock, &p.ImagenURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByFerreteria cuenta los productos de una ferretería (límite de plan).
func (r *ProductoRepo) CountByFerreteria(ferreteriaID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE ferreteria_id = $1`, ferreteriaID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return count, nil
}

// Delete elimina un producto. Devuelve false si no existía; ErrConflict si
// todavía lo referencian líneas de pedido.
func (r *ProductoRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrConflict
		}
		return false, fmt.Errorf("delete producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ProductoRepo) scanOne(row pgx.Row, op string) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.FerreteriaID, &p.CategoriaID, &p.SKU, &p.Nombre,
		&p.Precio, &p.Stock, &p.ImagenURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
