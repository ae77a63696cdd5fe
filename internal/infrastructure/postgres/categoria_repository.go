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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
// ParentID usa NULL para categorías raíz; el dominio lo ve como string vacío.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, parent_id, nombre, descripcion, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ParentID, c.Nombre, c.Descripcion, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert categoría: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Nil si no existe.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `
		SELECT id, COALESCE(parent_id, ''), nombre, descripcion, created_at, updated_at
		FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ParentID, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoría: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias SET parent_id = NULLIF($2, ''), nombre = $3, descripcion = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ParentID, c.Nombre, c.Descripcion, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update categoría: %w", err)
	}
	return nil
}

// List lista categorías con paginación.
func (r *CategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	query := `
		SELECT id, COALESCE(parent_id, ''), nombre, descripcion, created_at, updated_at
		FROM categorias ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categorías: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.ParentID, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría. Devuelve false si no existía; ErrConflict si
// todavía la referencian productos o subcategorías.
func (r *CategoriaRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrConflict
		}
		return false, fmt.Errorf("delete categoría: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
