package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ferreplus/ferreteria-api/internal/application/analytics"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

const testFerreteria = "11111111-1111-1111-1111-111111111111"

type analyticsRepoMock struct{ mock.Mock }

func (m *analyticsRepoMock) GetVentasPorPeriodo(ctx context.Context, ferreteriaID, bucket string, desde, hasta time.Time) ([]repository.VentaBucketResult, error) {
	args := m.Called(ctx, ferreteriaID, bucket, desde, hasta)
	rows, _ := args.Get(0).([]repository.VentaBucketResult)
	return rows, args.Error(1)
}

func (m *analyticsRepoMock) GetTopProductos(ctx context.Context, ferreteriaID string, desde, hasta time.Time, limit int) ([]repository.TopProductoResult, error) {
	args := m.Called(ctx, ferreteriaID, desde, hasta, limit)
	rows, _ := args.Get(0).([]repository.TopProductoResult)
	return rows, args.Error(1)
}

func (m *analyticsRepoMock) GetPedidosPorHora(ctx context.Context, ferreteriaID string, desde, hasta time.Time) ([]repository.PedidosPorHoraResult, error) {
	args := m.Called(ctx, ferreteriaID, desde, hasta)
	rows, _ := args.Get(0).([]repository.PedidosPorHoraResult)
	return rows, args.Error(1)
}

func (m *analyticsRepoMock) GetVentasMetrics(ctx context.Context, ferreteriaID string, desde, hasta time.Time) (decimal.Decimal, int, error) {
	args := m.Called(ctx, ferreteriaID, desde, hasta)
	total, _ := args.Get(0).(decimal.Decimal)
	return total, args.Int(1), args.Error(2)
}

// ── FormatPeriodo ─────────────────────────────────────────────────────────────

func TestFormatPeriodo(t *testing.T) {
	// El 29 de agosto de 2026 (sábado) cae en la semana ISO 35.
	fecha := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-08-29", analytics.FormatPeriodo(repository.BucketDia, fecha))
	assert.Equal(t, "2026-W35", analytics.FormatPeriodo(repository.BucketSemana, fecha))
	assert.Equal(t, "2026-08", analytics.FormatPeriodo(repository.BucketMes, fecha))
}

func TestFormatPeriodo_SemanaISOCruzaAnio(t *testing.T) {
	// El 29 de diciembre de 2025 pertenece a la semana ISO 1 de 2026.
	fecha := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-W01", analytics.FormatPeriodo(repository.BucketSemana, fecha))
}

// ── GetVentasSerie ────────────────────────────────────────────────────────────

func TestGetVentasSerie_BucketInvalido(t *testing.T) {
	uc := analytics.NewVentasUseCase(new(analyticsRepoMock))
	_, err := uc.GetVentasSerie(context.Background(), testFerreteria, "trimestre",
		time.Now().AddDate(0, 0, -7), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetVentasSerie_RangoInvertido(t *testing.T) {
	uc := analytics.NewVentasUseCase(new(analyticsRepoMock))
	_, err := uc.GetVentasSerie(context.Background(), testFerreteria, repository.BucketDia,
		time.Now(), time.Now().AddDate(0, 0, -7))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetVentasSerie_FormateaPeriodos(t *testing.T) {
	repo := new(analyticsRepoMock)
	uc := analytics.NewVentasUseCase(repo)

	desde := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	repo.On("GetVentasPorPeriodo", mock.Anything, testFerreteria, repository.BucketDia, desde, hasta).
		Return([]repository.VentaBucketResult{
			{Periodo: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(45980), Pedidos: 4},
			{Periodo: time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(8990), Pedidos: 1},
		}, nil)

	out, err := uc.GetVentasSerie(context.Background(), testFerreteria, repository.BucketDia, desde, hasta)
	require.NoError(t, err)
	assert.Equal(t, repository.BucketDia, out.Bucket)
	require.Len(t, out.Puntos, 2)
	assert.Equal(t, "2026-08-03", out.Puntos[0].Periodo)
	assert.Equal(t, 4, out.Puntos[0].Pedidos)
	assert.True(t, decimal.NewFromInt(45980).Equal(out.Puntos[0].Total))
}

// ── GetResumen ────────────────────────────────────────────────────────────────

func TestGetResumen_AgregaMetricasYHoraPico(t *testing.T) {
	repo := new(analyticsRepoMock)
	uc := analytics.NewVentasUseCase(repo)

	// Las tres métricas del fan-out más la distribución horaria.
	repo.On("GetVentasMetrics", mock.Anything, testFerreteria, mock.Anything, mock.Anything).
		Return(decimal.NewFromInt(25480), 3, nil).Once()
	repo.On("GetVentasMetrics", mock.Anything, testFerreteria, mock.Anything, mock.Anything).
		Return(decimal.NewFromInt(312000), 41, nil).Once()
	repo.On("GetTopProductos", mock.Anything, testFerreteria, mock.Anything, mock.Anything, 5).
		Return([]repository.TopProductoResult{
			{ProductoID: "p1", SKU: "MART-001", Nombre: "Martillo", CantidadVendida: 17, TotalVendido: decimal.NewFromInt(152830)},
		}, nil)
	repo.On("GetPedidosPorHora", mock.Anything, testFerreteria, mock.Anything, mock.Anything).
		Return([]repository.PedidosPorHoraResult{
			{Hora: 10, Pedidos: 7},
			{Hora: 18, Pedidos: 12},
			{Hora: 12, Pedidos: 9},
		}, nil)

	out, err := uc.GetResumen(context.Background(), testFerreteria)
	require.NoError(t, err)

	// Ambos GetVentasMetrics corren en paralelo con el mismo matcher, así que
	// la asignación hoy/mes puede intercambiarse; validamos el conjunto.
	totales := []int{out.PedidosHoy, out.PedidosMes}
	assert.ElementsMatch(t, []int{3, 41}, totales)

	require.Len(t, out.TopProductos, 1)
	assert.Equal(t, "MART-001", out.TopProductos[0].SKU)
	require.NotNil(t, out.HoraPico)
	assert.Equal(t, 18, out.HoraPico.Hora, "la hora pico es la de más pedidos")
	assert.Equal(t, 12, out.HoraPico.Pedidos)
	assert.NotEmpty(t, out.Etiqueta)
}

func TestGetResumen_SinPedidos_HoraPicoNil(t *testing.T) {
	repo := new(analyticsRepoMock)
	uc := analytics.NewVentasUseCase(repo)

	repo.On("GetVentasMetrics", mock.Anything, testFerreteria, mock.Anything, mock.Anything).
		Return(decimal.Zero, 0, nil)
	repo.On("GetTopProductos", mock.Anything, testFerreteria, mock.Anything, mock.Anything, 5).
		Return([]repository.TopProductoResult{}, nil)
	repo.On("GetPedidosPorHora", mock.Anything, testFerreteria, mock.Anything, mock.Anything).
		Return([]repository.PedidosPorHoraResult{}, nil)

	out, err := uc.GetResumen(context.Background(), testFerreteria)
	require.NoError(t, err)
	assert.Nil(t, out.HoraPico)
	assert.Equal(t, 0, out.PedidosHoy)
	assert.True(t, out.VentasMes.IsZero())
}
