package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/application/usecase"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
)

const (
	clienteID   = "33333333-3333-3333-3333-333333333333"
	productoID  = "44444444-4444-4444-4444-444444444444"
	producto2ID = "55555555-5555-5555-5555-555555555555"
)

func pedidoDeps() (*pedidoRepoMock, *productoRepoMock, *clienteRepoMock, *usecase.PedidoUseCase) {
	pedidos := new(pedidoRepoMock)
	productos := new(productoRepoMock)
	clientes := new(clienteRepoMock)
	runner := &txRunnerMock{pedidos: pedidos, productos: productos}
	uc := usecase.NewPedidoUseCase(runner, pedidos, productos, clientes)
	return pedidos, productos, clientes, uc
}

func productoEnStock(id string, precio int64, stock int) *entity.Producto {
	return &entity.Producto{
		ID:           id,
		FerreteriaID: ferreteriaA,
		SKU:          "SKU-" + id[:4],
		Nombre:       "Producto " + id[:4],
		Precio:       decimal.NewFromInt(precio),
		Stock:        stock,
	}
}

func TestPedidoCreate_CalculaTotalYRebajaStock(t *testing.T) {
	pedidos, productos, clientes, uc := pedidoDeps()

	clientes.On("GetByID", clienteID).Return(&entity.Cliente{ID: clienteID}, nil)
	productos.On("GetByID", productoID).Return(productoEnStock(productoID, 8990, 10), nil)
	productos.On("GetByID", producto2ID).Return(productoEnStock(producto2ID, 1500, 100), nil)
	pedidos.On("Create", mock.AnythingOfType("*entity.Pedido"), mock.Anything).Return(nil)
	productos.On("AjustarStock", productoID, -2).Return(nil)
	productos.On("AjustarStock", producto2ID, -5).Return(nil)

	out, err := uc.Create(context.Background(), ferreteriaA, dto.CreatePedidoRequest{
		ClienteID: clienteID,
		Lineas: []dto.CreatePedidoDetalle{
			{ProductoID: productoID, Cantidad: 2},
			{ProductoID: producto2ID, Cantidad: 5},
		},
	})
	require.NoError(t, err)

	// 2×8990 + 5×1500 = 25480, calculado con el precio vigente del servidor.
	assert.True(t, decimal.NewFromInt(25480).Equal(out.Total), "total: %s", out.Total)
	assert.Equal(t, entity.PedidoPendiente, out.Estado)
	require.Len(t, out.Lineas, 2)
	assert.True(t, decimal.NewFromInt(17980).Equal(out.Lineas[0].Subtotal))
	productos.AssertCalled(t, "AjustarStock", productoID, -2)
	productos.AssertCalled(t, "AjustarStock", producto2ID, -5)
}

func TestPedidoCreate_StockInsuficiente_NoPersiste(t *testing.T) {
	pedidos, productos, clientes, uc := pedidoDeps()

	clientes.On("GetByID", clienteID).Return(&entity.Cliente{ID: clienteID}, nil)
	productos.On("GetByID", productoID).Return(productoEnStock(productoID, 8990, 1), nil)

	_, err := uc.Create(context.Background(), ferreteriaA, dto.CreatePedidoRequest{
		ClienteID: clienteID,
		Lineas:    []dto.CreatePedidoDetalle{{ProductoID: productoID, Cantidad: 2}},
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	pedidos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	productos.AssertNotCalled(t, "AjustarStock", mock.Anything, mock.Anything)
}

func TestPedidoCreate_LineasRepetidasSumanContraElStock(t *testing.T) {
	pedidos, productos, clientes, uc := pedidoDeps()

	clientes.On("GetByID", clienteID).Return(&entity.Cliente{ID: clienteID}, nil)
	productos.On("GetByID", productoID).Return(productoEnStock(productoID, 8990, 10), nil)

	// Cada línea cabe por separado (6 ≤ 10), pero la suma 6+6 no.
	_, err := uc.Create(context.Background(), ferreteriaA, dto.CreatePedidoRequest{
		ClienteID: clienteID,
		Lineas: []dto.CreatePedidoDetalle{
			{ProductoID: productoID, Cantidad: 6},
			{ProductoID: productoID, Cantidad: 6},
		},
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	pedidos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	productos.AssertNotCalled(t, "AjustarStock", mock.Anything, mock.Anything)
}

func TestPedidoCreate_LineasRepetidasQueCaben_Persiste(t *testing.T) {
	pedidos, productos, clientes, uc := pedidoDeps()

	clientes.On("GetByID", clienteID).Return(&entity.Cliente{ID: clienteID}, nil)
	productos.On("GetByID", productoID).Return(productoEnStock(productoID, 1000, 10), nil)
	pedidos.On("Create", mock.AnythingOfType("*entity.Pedido"), mock.Anything).Return(nil)
	productos.On("AjustarStock", productoID, -4).Return(nil)
	productos.On("AjustarStock", productoID, -6).Return(nil)

	out, err := uc.Create(context.Background(), ferreteriaA, dto.CreatePedidoRequest{
		ClienteID: clienteID,
		Lineas: []dto.CreatePedidoDetalle{
			{ProductoID: productoID, Cantidad: 4},
			{ProductoID: productoID, Cantidad: 6},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10000).Equal(out.Total), "total: %s", out.Total)
	require.Len(t, out.Lineas, 2)
}

func TestPedidoCreate_ProductoDeOtraFerreteria_RetornaForbidden(t *testing.T) {
	_, productos, clientes, uc := pedidoDeps()

	clientes.On("GetByID", clienteID).Return(&entity.Cliente{ID: clienteID}, nil)
	ajeno := productoEnStock(productoID, 8990, 10)
	ajeno.FerreteriaID = ferreteriaB
	productos.On("GetByID", productoID).Return(ajeno, nil)

	_, err := uc.Create(context.Background(), ferreteriaA, dto.CreatePedidoRequest{
		ClienteID: clienteID,
		Lineas:    []dto.CreatePedidoDetalle{{ProductoID: productoID, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPedidoCreate_ClienteInexistente_RetornaNotFound(t *testing.T) {
	_, _, clientes, uc := pedidoDeps()

	clientes.On("GetByID", clienteID).Return(nil, nil)

	_, err := uc.Create(context.Background(), ferreteriaA, dto.CreatePedidoRequest{
		ClienteID: clienteID,
		Lineas:    []dto.CreatePedidoDetalle{{ProductoID: productoID, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPedidoUpdateEstado_DesdeCancelado_RetornaConflict(t *testing.T) {
	pedidos, _, _, uc := pedidoDeps()

	pedidos.On("GetByID", "ped-1").Return(&entity.Pedido{
		ID: "ped-1", FerreteriaID: ferreteriaA, Estado: entity.PedidoCancelado,
	}, nil)

	_, err := uc.UpdateEstado(ferreteriaA, "ped-1", entity.PedidoPagado)
	assert.ErrorIs(t, err, domain.ErrConflict)
	pedidos.AssertNotCalled(t, "UpdateEstado", mock.Anything, mock.Anything)
}

func TestPedidoUpdateEstado_TransicionValida(t *testing.T) {
	pedidos, _, _, uc := pedidoDeps()

	pedidos.On("GetByID", "ped-1").Return(&entity.Pedido{
		ID: "ped-1", FerreteriaID: ferreteriaA, Estado: entity.PedidoPendiente,
	}, nil)
	pedidos.On("UpdateEstado", "ped-1", entity.PedidoPagado).Return(true, nil)

	out, err := uc.UpdateEstado(ferreteriaA, "ped-1", entity.PedidoPagado)
	require.NoError(t, err)
	assert.Equal(t, entity.PedidoPagado, out.Estado)
}

func TestPedidoGetByID_OtroTenant_RetornaForbidden(t *testing.T) {
	pedidos, _, _, uc := pedidoDeps()

	pedidos.On("GetByID", "ped-1").Return(&entity.Pedido{ID: "ped-1", FerreteriaID: ferreteriaB}, nil)

	_, err := uc.GetByID(ferreteriaA, "ped-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPedidoDelete_Inexistente_RetornaNotFound(t *testing.T) {
	pedidos, _, _, uc := pedidoDeps()

	pedidos.On("GetByID", "ped-x").Return(nil, nil)

	assert.ErrorIs(t, uc.Delete(ferreteriaA, "ped-x"), domain.ErrNotFound)
}
