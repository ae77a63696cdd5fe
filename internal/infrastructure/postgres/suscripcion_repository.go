package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

var _ repository.SuscripcionRepository = (*SuscripcionRepo)(nil)

// SuscripcionRepo implementación del puerto SuscripcionRepository sobre PostgreSQL.
type SuscripcionRepo struct {
	q Querier
}

// NewSuscripcionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSuscripcionRepository(q Querier) *SuscripcionRepo {
	return &SuscripcionRepo{q: q}
}

// ListPlanes devuelve los planes ordenados por precio.
func (r *SuscripcionRepo) ListPlanes() ([]*entity.Plan, error) {
	query := `
		SELECT id, nombre, precio_mensual, max_productos, descripcion, created_at, updated_at
		FROM planes ORDER BY precio_mensual`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list planes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Nombre, &p.PrecioMensual, &p.MaxProductos, &p.Descripcion, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetPlanByID obtiene un plan por ID. Nil si no existe.
func (r *SuscripcionRepo) GetPlanByID(id string) (*entity.Plan, error) {
	query := `
		SELECT id, nombre, precio_mensual, max_productos, descripcion, created_at, updated_at
		FROM planes WHERE id = $1`
	var p entity.Plan
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.PrecioMensual, &p.MaxProductos, &p.Descripcion, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// GetActivaByFerreteria devuelve la suscripción activa más reciente de la
// ferretería. Nil si nunca se ha suscrito o no tiene ninguna activa.
func (r *SuscripcionRepo) GetActivaByFerreteria(ferreteriaID string) (*entity.Suscripcion, error) {
	query := `
		SELECT id, ferreteria_id, plan_id, estado, fecha_inicio, fecha_fin, created_at, updated_at
		FROM suscripciones
		WHERE ferreteria_id = $1 AND estado = $2
		ORDER BY fecha_inicio DESC LIMIT 1`
	var s entity.Suscripcion
	err := r.q.QueryRow(context.Background(), query, ferreteriaID, entity.SuscripcionActiva).Scan(
		&s.ID, &s.FerreteriaID, &s.PlanID, &s.Estado, &s.FechaInicio, &s.FechaFin, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get suscripción activa: %w", err)
	}
	return &s, nil
}

// Create persiste una nueva suscripción.
func (r *SuscripcionRepo) Create(s *entity.Suscripcion) error {
	query := `
		INSERT INTO suscripciones (id, ferreteria_id, plan_id, estado, fecha_inicio, fecha_fin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.FerreteriaID, s.PlanID, s.Estado, s.FechaInicio, s.FechaFin, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert suscripción: %w", err)
	}
	return nil
}

// CerrarActivas marca con `estado` todas las suscripciones activas de la ferretería.
func (r *SuscripcionRepo) CerrarActivas(ferreteriaID, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suscripciones SET estado = $2, updated_at = now() WHERE ferreteria_id = $1 AND estado = $3`,
		ferreteriaID, estado, entity.SuscripcionActiva,
	)
	if err != nil {
		return fmt.Errorf("cerrar suscripciones activas: %w", err)
	}
	return nil
}
