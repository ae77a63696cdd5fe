package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ferreplus/ferreteria-api/internal/application/usecase"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
)

type pdfGeneratorMock struct{ mock.Mock }

func (m *pdfGeneratorMock) GenerateComprobantePDF(
	_ context.Context,
	pedido *entity.Pedido,
	ferreteria *entity.Ferreteria,
	cliente *entity.Cliente,
	detalles []usecase.DetallePedidoParaPDF,
) ([]byte, error) {
	args := m.Called(pedido, ferreteria, cliente, detalles)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func pdfDeps() (*pedidoRepoMock, *ferreteriaRepoMock, *clienteRepoMock, *productoRepoMock, *pdfGeneratorMock, *usecase.PedidoPDFUseCase) {
	pedidos := new(pedidoRepoMock)
	ferreterias := new(ferreteriaRepoMock)
	clientes := new(clienteRepoMock)
	productos := new(productoRepoMock)
	gen := new(pdfGeneratorMock)
	uc := usecase.NewPedidoPDFUseCase(pedidos, ferreterias, clientes, productos, gen)
	return pedidos, ferreterias, clientes, productos, gen, uc
}

func pedidoDeA() *entity.Pedido {
	return &entity.Pedido{ID: "ped-1", FerreteriaID: ferreteriaA, ClienteID: clienteID}
}

func TestDownloadComprobantePDF_GeneraBytesYNombre(t *testing.T) {
	pedidos, ferreterias, clientes, productos, gen, uc := pdfDeps()

	pedidos.On("GetByID", "ped-1").Return(pedidoDeA(), nil)
	ferreterias.On("GetByID", ferreteriaA).Return(&entity.Ferreteria{ID: ferreteriaA, RazonSocial: "Ferretería Centro"}, nil)
	clientes.On("GetByID", clienteID).Return(&entity.Cliente{ID: clienteID, Nombre: "Juana"}, nil)
	pedidos.On("GetDetalles", "ped-1").Return([]*entity.DetallePedido{
		{ID: "det-1", PedidoID: "ped-1", ProductoID: productoID, Cantidad: 2},
	}, nil)
	productos.On("GetByID", productoID).Return(productoEnStock(productoID, 8990, 10), nil)
	gen.On("GenerateComprobantePDF", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]byte("%PDF-fake"), nil)

	pdfBytes, filename, err := uc.DownloadComprobantePDF(context.Background(), ferreteriaA, "ped-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, "pedido_ped-1.pdf", filename)
}

func TestDownloadComprobantePDF_FerreteriaAusente_RetornaNotFound(t *testing.T) {
	pedidos, ferreterias, _, _, gen, uc := pdfDeps()

	pedidos.On("GetByID", "ped-1").Return(pedidoDeA(), nil)
	ferreterias.On("GetByID", ferreteriaA).Return(nil, nil)

	_, _, err := uc.DownloadComprobantePDF(context.Background(), ferreteriaA, "ped-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	gen.AssertNotCalled(t, "GenerateComprobantePDF",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDownloadComprobantePDF_ClienteAusente_RetornaNotFound(t *testing.T) {
	pedidos, ferreterias, clientes, _, gen, uc := pdfDeps()

	pedidos.On("GetByID", "ped-1").Return(pedidoDeA(), nil)
	ferreterias.On("GetByID", ferreteriaA).Return(&entity.Ferreteria{ID: ferreteriaA}, nil)
	clientes.On("GetByID", clienteID).Return(nil, nil)

	_, _, err := uc.DownloadComprobantePDF(context.Background(), ferreteriaA, "ped-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	gen.AssertNotCalled(t, "GenerateComprobantePDF",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDownloadComprobantePDF_OtroTenant_RetornaForbidden(t *testing.T) {
	pedidos, _, _, _, _, uc := pdfDeps()

	ajeno := pedidoDeA()
	ajeno.FerreteriaID = ferreteriaB
	pedidos.On("GetByID", "ped-1").Return(ajeno, nil)

	_, _, err := uc.DownloadComprobantePDF(context.Background(), ferreteriaA, "ped-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
