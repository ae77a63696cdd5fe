package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

// Mocks testify de los puertos de persistencia que usan los casos de uso.

type productoRepoMock struct{ mock.Mock }

func (m *productoRepoMock) Create(p *entity.Producto) error {
	return m.Called(p).Error(0)
}

func (m *productoRepoMock) GetByID(id string) (*entity.Producto, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*entity.Producto)
	return p, args.Error(1)
}

func (m *productoRepoMock) GetByFerreteriaAndSKU(ferreteriaID, sku string) (*entity.Producto, error) {
	args := m.Called(ferreteriaID, sku)
	p, _ := args.Get(0).(*entity.Producto)
	return p, args.Error(1)
}

func (m *productoRepoMock) Update(p *entity.Producto) error {
	return m.Called(p).Error(0)
}

func (m *productoRepoMock) AjustarStock(productoID string, delta int) error {
	return m.Called(productoID, delta).Error(0)
}

func (m *productoRepoMock) ListByFerreteria(ferreteriaID string, limit, offset int) ([]*entity.Producto, error) {
	args := m.Called(ferreteriaID, limit, offset)
	list, _ := args.Get(0).([]*entity.Producto)
	return list, args.Error(1)
}

func (m *productoRepoMock) CountByFerreteria(ferreteriaID string) (int, error) {
	args := m.Called(ferreteriaID)
	return args.Int(0), args.Error(1)
}

func (m *productoRepoMock) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type suscripcionRepoMock struct{ mock.Mock }

func (m *suscripcionRepoMock) ListPlanes() ([]*entity.Plan, error) {
	args := m.Called()
	list, _ := args.Get(0).([]*entity.Plan)
	return list, args.Error(1)
}

func (m *suscripcionRepoMock) GetPlanByID(id string) (*entity.Plan, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*entity.Plan)
	return p, args.Error(1)
}

func (m *suscripcionRepoMock) GetActivaByFerreteria(ferreteriaID string) (*entity.Suscripcion, error) {
	args := m.Called(ferreteriaID)
	s, _ := args.Get(0).(*entity.Suscripcion)
	return s, args.Error(1)
}

func (m *suscripcionRepoMock) Create(s *entity.Suscripcion) error {
	return m.Called(s).Error(0)
}

func (m *suscripcionRepoMock) CerrarActivas(ferreteriaID, estado string) error {
	return m.Called(ferreteriaID, estado).Error(0)
}

type pedidoRepoMock struct{ mock.Mock }

func (m *pedidoRepoMock) Create(p *entity.Pedido, detalles []*entity.DetallePedido) error {
	return m.Called(p, detalles).Error(0)
}

func (m *pedidoRepoMock) GetByID(id string) (*entity.Pedido, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*entity.Pedido)
	return p, args.Error(1)
}

func (m *pedidoRepoMock) GetDetalles(pedidoID string) ([]*entity.DetallePedido, error) {
	args := m.Called(pedidoID)
	list, _ := args.Get(0).([]*entity.DetallePedido)
	return list, args.Error(1)
}

func (m *pedidoRepoMock) UpdateEstado(id, estado string) (bool, error) {
	args := m.Called(id, estado)
	return args.Bool(0), args.Error(1)
}

func (m *pedidoRepoMock) ListByFerreteria(ferreteriaID string, limit, offset int) ([]*entity.Pedido, error) {
	args := m.Called(ferreteriaID, limit, offset)
	list, _ := args.Get(0).([]*entity.Pedido)
	return list, args.Error(1)
}

func (m *pedidoRepoMock) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type clienteRepoMock struct{ mock.Mock }

func (m *clienteRepoMock) Create(c *entity.Cliente) error {
	return m.Called(c).Error(0)
}

func (m *clienteRepoMock) GetByID(id string) (*entity.Cliente, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*entity.Cliente)
	return c, args.Error(1)
}

func (m *clienteRepoMock) FindByEmail(email string) (*entity.Cliente, error) {
	args := m.Called(email)
	c, _ := args.Get(0).(*entity.Cliente)
	return c, args.Error(1)
}

func (m *clienteRepoMock) Update(c *entity.Cliente) error {
	return m.Called(c).Error(0)
}

func (m *clienteRepoMock) List(limit, offset int) ([]*entity.Cliente, error) {
	args := m.Called(limit, offset)
	list, _ := args.Get(0).([]*entity.Cliente)
	return list, args.Error(1)
}

func (m *clienteRepoMock) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type ferreteriaRepoMock struct{ mock.Mock }

func (m *ferreteriaRepoMock) Create(f *entity.Ferreteria) error {
	return m.Called(f).Error(0)
}

func (m *ferreteriaRepoMock) GetByID(id string) (*entity.Ferreteria, error) {
	args := m.Called(id)
	f, _ := args.Get(0).(*entity.Ferreteria)
	return f, args.Error(1)
}

func (m *ferreteriaRepoMock) GetByRUT(rut string) (*entity.Ferreteria, error) {
	args := m.Called(rut)
	f, _ := args.Get(0).(*entity.Ferreteria)
	return f, args.Error(1)
}

func (m *ferreteriaRepoMock) Update(f *entity.Ferreteria) error {
	return m.Called(f).Error(0)
}

func (m *ferreteriaRepoMock) List(limit, offset int) ([]*entity.Ferreteria, error) {
	args := m.Called(limit, offset)
	list, _ := args.Get(0).([]*entity.Ferreteria)
	return list, args.Error(1)
}

func (m *ferreteriaRepoMock) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// txRunnerMock ejecuta el callback directamente contra los repos mockeados,
// sin transacción real.
type txRunnerMock struct {
	pedidos   repository.PedidoRepository
	productos repository.ProductoRepository
}

func (m *txRunnerMock) Run(_ context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	return fn(m.pedidos, m.productos)
}
