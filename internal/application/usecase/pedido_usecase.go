package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

// PedidoTxRunner ejecuta la creación de un pedido (cabecera + líneas + rebaja
// de stock) dentro de una transacción. La implementación vive en infrastructure.
type PedidoTxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}

// PedidoUseCase casos de uso para pedidos, acotados a la ferretería del token.
type PedidoUseCase struct {
	txRunner     PedidoTxRunner
	pedidoRepo   repository.PedidoRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(
	txRunner PedidoTxRunner,
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
) *PedidoUseCase {
	return &PedidoUseCase{
		txRunner:     txRunner,
		pedidoRepo:   pedidoRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
	}
}

// Create registra un pedido: valida cliente y productos (todos de la misma
// ferretería, con stock suficiente), calcula el total con el precio vigente y
// persiste cabecera, líneas y rebaja de stock en una sola transacción.
func (uc *PedidoUseCase) Create(ctx context.Context, ferreteriaID string, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	pedido := &entity.Pedido{
		ID:           uuid.New().String(),
		FerreteriaID: ferreteriaID,
		ClienteID:    in.ClienteID,
		Estado:       entity.PedidoPendiente,
		MedioPago:    in.MedioPago,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	total := decimal.Zero
	detalles := make([]*entity.DetallePedido, 0, len(in.Lineas))
	solicitado := make(map[string]int, len(in.Lineas)) // cantidad acumulada por producto
	for _, linea := range in.Lineas {
		producto, err := uc.productoRepo.GetByID(linea.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrNotFound
		}
		if producto.FerreteriaID != ferreteriaID {
			return nil, domain.ErrForbidden
		}
		// El mismo producto puede venir en más de una línea; el stock se
		// compara contra la suma de todas ellas.
		solicitado[producto.ID] += linea.Cantidad
		if producto.Stock < solicitado[producto.ID] {
			return nil, domain.ErrStockInsuficiente
		}
		subtotal := producto.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
		detalles = append(detalles, &entity.DetallePedido{
			ID:             uuid.New().String(),
			PedidoID:       pedido.ID,
			ProductoID:     producto.ID,
			Cantidad:       linea.Cantidad,
			PrecioUnitario: producto.Precio,
			Subtotal:       subtotal,
		})
		total = total.Add(subtotal)
	}
	pedido.Total = total

	err = uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		if err := pedidoRepo.Create(pedido, detalles); err != nil {
			return err
		}
		for _, d := range detalles {
			if err := productoRepo.AjustarStock(d.ProductoID, -d.Cantidad); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido, detalles), nil
}

// GetByID obtiene un pedido con sus líneas. Nil si no existe; ErrForbidden si
// pertenece a otra ferretería.
func (uc *PedidoUseCase) GetByID(ferreteriaID, id string) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, nil
	}
	if pedido.FerreteriaID != ferreteriaID {
		return nil, domain.ErrForbidden
	}
	detalles, err := uc.pedidoRepo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido, detalles), nil
}

// UpdateEstado cambia el estado de un pedido de la ferretería.
func (uc *PedidoUseCase) UpdateEstado(ferreteriaID, id, estado string) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, nil
	}
	if pedido.FerreteriaID != ferreteriaID {
		return nil, domain.ErrForbidden
	}
	if pedido.Estado == entity.PedidoCancelado {
		return nil, domain.ErrConflict // un pedido cancelado no cambia de estado
	}
	updated, err := uc.pedidoRepo.UpdateEstado(id, estado)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, nil
	}
	pedido.Estado = estado
	pedido.UpdatedAt = time.Now()
	return toPedidoResponse(pedido, nil), nil
}

// List lista los pedidos de la ferretería con paginación (sin líneas).
func (uc *PedidoUseCase) List(ferreteriaID string, limit, offset int) (*dto.PedidoListResponse, error) {
	list, err := uc.pedidoRepo.ListByFerreteria(ferreteriaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPedidoResponse(p, nil))
	}
	return &dto.PedidoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un pedido de la ferretería. ErrNotFound si no existía.
func (uc *PedidoUseCase) Delete(ferreteriaID, id string) error {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pedido == nil {
		return domain.ErrNotFound
	}
	if pedido.FerreteriaID != ferreteriaID {
		return domain.ErrForbidden
	}
	deleted, err := uc.pedidoRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toPedidoResponse(p *entity.Pedido, detalles []*entity.DetallePedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	out := &dto.PedidoResponse{
		ID:             p.ID,
		FerreteriaID:   p.FerreteriaID,
		ClienteID:      p.ClienteID,
		Estado:         p.Estado,
		Total:          p.Total,
		MedioPago:      p.MedioPago,
		ReferenciaPago: p.ReferenciaPago,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for _, d := range detalles {
		out.Lineas = append(out.Lineas, dto.DetallePedidoResponse{
			ID:             d.ID,
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return out
}
