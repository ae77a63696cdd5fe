package repository

import "github.com/ferreplus/ferreteria-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido y sus líneas (DIP).
type PedidoRepository interface {
	Create(pedido *entity.Pedido, detalles []*entity.DetallePedido) error
	GetByID(id string) (*entity.Pedido, error)
	GetDetalles(pedidoID string) ([]*entity.DetallePedido, error)
	UpdateEstado(id, estado string) (bool, error)
	ListByFerreteria(ferreteriaID string, limit, offset int) ([]*entity.Pedido, error)
	Delete(id string) (bool, error)
}
