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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoColumns = `id, ferreteria_id, cliente_id, estado, total, medio_pago, referencia_pago, created_at, updated_at`

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste la cabecera y las líneas. Debe llamarse dentro de una tx
// (vía TxRunner) para que cabecera y detalle sean atómicos.
func (r *PedidoRepo) Create(p *entity.Pedido, detalles []*entity.DetallePedido) error {
	ctx := context.Background()
	query := `
		INSERT INTO pedidos (` + pedidoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.FerreteriaID, p.ClienteID, p.Estado, p.Total,
		p.MedioPago, p.ReferenciaPago, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	for _, d := range detalles {
		_, err := r.q.Exec(ctx, `
			INSERT INTO detalle_pedidos (id, pedido_id, producto_id, cantidad, precio_unitario, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			d.ID, d.PedidoID, d.ProductoID, d.Cantidad, d.PrecioUnitario, d.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert detalle pedido: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido. Nil si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FerreteriaID, &p.ClienteID, &p.Estado, &p.Total,
		&p.MedioPago, &p.ReferenciaPago, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// GetDetalles devuelve las líneas de un pedido.
func (r *PedidoRepo) GetDetalles(pedidoID string) ([]*entity.DetallePedido, error) {
	query := `
		SELECT id, pedido_id, producto_id, cantidad, precio_unitario, subtotal
		FROM detalle_pedidos WHERE pedido_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("get detalles pedido: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetallePedido
	for rows.Next() {
		var d entity.DetallePedido
		if err := rows.Scan(&d.ID, &d.PedidoID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle pedido: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado del pedido. Devuelve false si no existía.
func (r *PedidoRepo) UpdateEstado(id, estado string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return false, fmt.Errorf("update estado pedido: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByFerreteria lista pedidos de una ferretería con paginación (sin líneas).
func (r *PedidoRepo) ListByFerreteria(ferreteriaID string, limit, offset int) ([]*entity.Pedido, error) {
	query := `
		SELECT ` + pedidoColumns + ` FROM pedidos
		WHERE ferreteria_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ferreteriaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.FerreteriaID, &p.ClienteID, &p.Estado, &p.Total,
			&p.MedioPago, &p.ReferenciaPago, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un pedido; las líneas caen por ON DELETE CASCADE.
// Devuelve false si no existía.
func (r *PedidoRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete pedido: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
