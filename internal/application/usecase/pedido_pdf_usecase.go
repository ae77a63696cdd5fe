package usecase

import (
	"context"
	"fmt"

	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

// DetallePedidoParaPDF enriquece una línea de detalle con el nombre y SKU del
// producto, que la tabla de líneas del comprobante necesita.
type DetallePedidoParaPDF struct {
	entity.DetallePedido
	ProductoNombre string
	ProductoSKU    string
}

// ComprobantePDFGenerator genera el comprobante gráfico de un pedido.
// La implementación concreta vive en infrastructure/pdf.
type ComprobantePDFGenerator interface {
	GenerateComprobantePDF(
		ctx context.Context,
		pedido *entity.Pedido,
		ferreteria *entity.Ferreteria,
		cliente *entity.Cliente,
		detalles []DetallePedidoParaPDF,
	) ([]byte, error)
}

// PedidoPDFUseCase genera el comprobante en PDF de un pedido.
type PedidoPDFUseCase struct {
	pedidoRepo     repository.PedidoRepository
	ferreteriaRepo repository.FerreteriaRepository
	clienteRepo    repository.ClienteRepository
	productoRepo   repository.ProductoRepository
	generator      ComprobantePDFGenerator
}

// NewPedidoPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPedidoPDFUseCase(
	pedidoRepo repository.PedidoRepository,
	ferreteriaRepo repository.FerreteriaRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	generator ComprobantePDFGenerator,
) *PedidoPDFUseCase {
	return &PedidoPDFUseCase{
		pedidoRepo:     pedidoRepo,
		ferreteriaRepo: ferreteriaRepo,
		clienteRepo:    clienteRepo,
		productoRepo:   productoRepo,
		generator:      generator,
	}
}

// DownloadComprobantePDF recupera los datos del pedido y genera el comprobante.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe.
//   - domain.ErrForbidden        si el pedido no pertenece a la ferretería del token.
func (uc *PedidoPDFUseCase) DownloadComprobantePDF(
	ctx context.Context,
	ferreteriaID, pedidoID string,
) (pdfBytes []byte, filename string, err error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if pedido == nil {
		return nil, "", domain.ErrNotFound
	}
	if pedido.FerreteriaID != ferreteriaID {
		return nil, "", domain.ErrForbidden
	}

	ferreteria, err := uc.ferreteriaRepo.GetByID(ferreteriaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener ferretería: %w", err)
	}
	if ferreteria == nil {
		return nil, "", domain.ErrNotFound
	}

	cliente, err := uc.clienteRepo.GetByID(pedido.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, "", domain.ErrNotFound
	}

	rawDetalles, err := uc.pedidoRepo.GetDetalles(pedidoID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener detalles: %w", err)
	}

	enriched := make([]DetallePedidoParaPDF, 0, len(rawDetalles))
	for _, d := range rawDetalles {
		nombre := "Producto " + d.ProductoID // fallback
		sku := ""
		if producto, pErr := uc.productoRepo.GetByID(d.ProductoID); pErr == nil && producto != nil {
			nombre = producto.Nombre
			sku = producto.SKU
		}
		enriched = append(enriched, DetallePedidoParaPDF{
			DetallePedido:  *d,
			ProductoNombre: nombre,
			ProductoSKU:    sku,
		})
	}

	pdfBytes, err = uc.generator.GenerateComprobantePDF(ctx, pedido, ferreteria, cliente, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("pedido_%s.pdf", pedido.ID)
	return pdfBytes, filename, nil
}
