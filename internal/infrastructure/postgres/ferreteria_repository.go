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

var _ repository.FerreteriaRepository = (*FerreteriaRepo)(nil)

const ferreteriaColumns = `id, rut, razon_social, direccion, lat, lng, telefono, api_key, horario, descripcion, estado, created_at, updated_at`

// FerreteriaRepo implementación del puerto FerreteriaRepository sobre PostgreSQL.
type FerreteriaRepo struct {
	q Querier
}

// NewFerreteriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFerreteriaRepository(q Querier) *FerreteriaRepo {
	return &FerreteriaRepo{q: q}
}

// Create persiste una nueva ferretería.
func (r *FerreteriaRepo) Create(f *entity.Ferreteria) error {
	query := `
		INSERT INTO ferreterias (` + ferreteriaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.RUT, f.RazonSocial, f.Direccion, f.Lat, f.Lng, f.Telefono,
		f.APIKey, f.Horario, f.Descripcion, f.Estado, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ferretería: %w", err)
	}
	return nil
}

// GetByID obtiene una ferretería por ID. Nil si no existe.
func (r *FerreteriaRepo) GetByID(id string) (*entity.Ferreteria, error) {
	query := `SELECT ` + ferreteriaColumns + ` FROM ferreterias WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ferretería")
}

// GetByRUT obtiene una ferretería por RUT normalizado. Nil si no existe.
func (r *FerreteriaRepo) GetByRUT(rut string) (*entity.Ferreteria, error) {
	query := `SELECT ` + ferreteriaColumns + ` FROM ferreterias WHERE rut = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, rut), "get ferretería by rut")
}

// Update actualiza una ferretería. El RUT y la API key no se tocan aquí.
func (r *FerreteriaRepo) Update(f *entity.Ferreteria) error {
	query := `
		UPDATE ferreterias
		SET razon_social = $2, direccion = $3, lat = $4, lng = $5, telefono = $6,
		    horario = $7, descripcion = $8, estado = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.RazonSocial, f.Direccion, f.Lat, f.Lng, f.Telefono,
		f.Horario, f.Descripcion, f.Estado, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ferretería: %w", err)
	}
	return nil
}

// List lista ferreterías con paginación.
func (r *FerreteriaRepo) List(limit, offset int) ([]*entity.Ferreteria, error) {
	query := `
		SELECT ` + ferreteriaColumns + ` FROM ferreterias
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ferreterías: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ferreteria
	for rows.Next() {
		var f entity.Ferreteria
		if err := rows.Scan(&f.ID, &f.RUT, &f.RazonSocial, &f.Direccion, &f.Lat, &f.Lng, &f.Telefono,
			&f.APIKey, &f.Horario, &f.Descripcion, &f.Estado, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ferretería: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina una ferretería. Devuelve false si no existía; ErrConflict si
// todavía la referencian usuarios, productos, pedidos o suscripciones.
func (r *FerreteriaRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM ferreterias WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrConflict
		}
		return false, fmt.Errorf("delete ferretería: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *FerreteriaRepo) scanOne(row pgx.Row, op string) (*entity.Ferreteria, error) {
	var f entity.Ferreteria
	err := row.Scan(&f.ID, &f.RUT, &f.RazonSocial, &f.Direccion, &f.Lat, &f.Lng, &f.Telefono,
		&f.APIKey, &f.Horario, &f.Descripcion, &f.Estado, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &f, nil
}
