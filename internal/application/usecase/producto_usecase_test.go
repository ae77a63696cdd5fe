package usecase_test

import (
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
	ferreteriaA = "11111111-1111-1111-1111-111111111111"
	ferreteriaB = "99999999-9999-9999-9999-999999999999"
)

func createProductoRequest() dto.CreateProductoRequest {
	return dto.CreateProductoRequest{
		SKU:    "MART-001",
		Nombre: "Martillo carpintero 16oz",
		Precio: decimal.NewFromInt(8990),
		Stock:  12,
	}
}

func TestProductoCreate_PersisteConTenantDelToken(t *testing.T) {
	productos := new(productoRepoMock)
	suscripciones := new(suscripcionRepoMock)
	uc := usecase.NewProductoUseCase(productos, suscripciones)

	productos.On("GetByFerreteriaAndSKU", ferreteriaA, "MART-001").Return(nil, nil)
	suscripciones.On("GetActivaByFerreteria", ferreteriaA).Return(nil, nil)
	productos.On("Create", mock.AnythingOfType("*entity.Producto")).Return(nil)

	out, err := uc.Create(ferreteriaA, createProductoRequest())
	require.NoError(t, err)
	assert.Equal(t, ferreteriaA, out.FerreteriaID, "el tenant sale del token, no del cuerpo")
	assert.Equal(t, "MART-001", out.SKU)
	assert.True(t, decimal.NewFromInt(8990).Equal(out.Precio))
}

func TestProductoCreate_PrecioNegativo_RetornaInvalidInput(t *testing.T) {
	uc := usecase.NewProductoUseCase(new(productoRepoMock), new(suscripcionRepoMock))

	in := createProductoRequest()
	in.Precio = decimal.NewFromInt(-1)

	_, err := uc.Create(ferreteriaA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoCreate_SKUDuplicado_RetornaDuplicate(t *testing.T) {
	productos := new(productoRepoMock)
	uc := usecase.NewProductoUseCase(productos, new(suscripcionRepoMock))

	productos.On("GetByFerreteriaAndSKU", ferreteriaA, "MART-001").
		Return(&entity.Producto{ID: "ya-existe"}, nil)

	_, err := uc.Create(ferreteriaA, createProductoRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	productos.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductoCreate_LimiteDelPlanAlcanzado_RetornaConflict(t *testing.T) {
	productos := new(productoRepoMock)
	suscripciones := new(suscripcionRepoMock)
	uc := usecase.NewProductoUseCase(productos, suscripciones)

	productos.On("GetByFerreteriaAndSKU", ferreteriaA, "MART-001").Return(nil, nil)
	suscripciones.On("GetActivaByFerreteria", ferreteriaA).
		Return(&entity.Suscripcion{ID: "s1", PlanID: "plan-basico", Estado: entity.SuscripcionActiva}, nil)
	suscripciones.On("GetPlanByID", "plan-basico").
		Return(&entity.Plan{ID: "plan-basico", MaxProductos: 50}, nil)
	productos.On("CountByFerreteria", ferreteriaA).Return(50, nil)

	_, err := uc.Create(ferreteriaA, createProductoRequest())
	assert.ErrorIs(t, err, domain.ErrConflict)
	productos.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductoCreate_PlanSinLimite_NoRestringe(t *testing.T) {
	productos := new(productoRepoMock)
	suscripciones := new(suscripcionRepoMock)
	uc := usecase.NewProductoUseCase(productos, suscripciones)

	productos.On("GetByFerreteriaAndSKU", ferreteriaA, "MART-001").Return(nil, nil)
	suscripciones.On("GetActivaByFerreteria", ferreteriaA).
		Return(&entity.Suscripcion{ID: "s1", PlanID: "plan-empresa", Estado: entity.SuscripcionActiva}, nil)
	suscripciones.On("GetPlanByID", "plan-empresa").
		Return(&entity.Plan{ID: "plan-empresa", MaxProductos: 0}, nil) // 0 = sin límite
	productos.On("Create", mock.AnythingOfType("*entity.Producto")).Return(nil)

	_, err := uc.Create(ferreteriaA, createProductoRequest())
	assert.NoError(t, err)
	productos.AssertNotCalled(t, "CountByFerreteria", mock.Anything)
}

func TestProductoGetByID_OtroTenant_RetornaForbidden(t *testing.T) {
	productos := new(productoRepoMock)
	uc := usecase.NewProductoUseCase(productos, new(suscripcionRepoMock))

	productos.On("GetByID", "p1").Return(&entity.Producto{ID: "p1", FerreteriaID: ferreteriaB}, nil)

	_, err := uc.GetByID(ferreteriaA, "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductoUpdate_StockNegativo_RetornaInvalidInput(t *testing.T) {
	productos := new(productoRepoMock)
	uc := usecase.NewProductoUseCase(productos, new(suscripcionRepoMock))

	productos.On("GetByID", "p1").Return(&entity.Producto{ID: "p1", FerreteriaID: ferreteriaA}, nil)

	stock := -3
	_, err := uc.Update(ferreteriaA, "p1", dto.UpdateProductoRequest{Stock: &stock})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	productos.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductoDelete_SegundaVez_RetornaNotFound(t *testing.T) {
	productos := new(productoRepoMock)
	uc := usecase.NewProductoUseCase(productos, new(suscripcionRepoMock))

	productos.On("GetByID", "p1").Return(&entity.Producto{ID: "p1", FerreteriaID: ferreteriaA}, nil).Once()
	productos.On("Delete", "p1").Return(true, nil).Once()
	require.NoError(t, uc.Delete(ferreteriaA, "p1"))

	productos.On("GetByID", "p1").Return(nil, nil).Once()
	assert.ErrorIs(t, uc.Delete(ferreteriaA, "p1"), domain.ErrNotFound)
}
