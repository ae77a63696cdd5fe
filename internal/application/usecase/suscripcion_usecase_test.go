package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/application/usecase"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
)

func planPro() *entity.Plan {
	return &entity.Plan{
		ID:            "plan-pro",
		Nombre:        "Pro",
		PrecioMensual: decimal.NewFromInt(14990),
		MaxProductos:  500,
		Descripcion:   "Hasta 500 productos",
	}
}

func TestSuscripcionUseCase_GetActiva_MarcaVencida(t *testing.T) {
	repo := new(suscripcionRepoMock)
	uc := usecase.NewSuscripcionUseCase(repo)

	fin := time.Now().AddDate(0, -1, 0) // venció hace un mes
	repo.On("GetActivaByFerreteria", ferreteriaA).Return(&entity.Suscripcion{
		ID:           "sus-1",
		FerreteriaID: ferreteriaA,
		PlanID:       "plan-pro",
		Estado:       entity.SuscripcionActiva,
		FechaInicio:  fin.AddDate(0, -1, 0),
		FechaFin:     &fin,
	}, nil)
	repo.On("GetPlanByID", "plan-pro").Return(planPro(), nil)

	out, err := uc.GetActiva(ferreteriaA)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.SuscripcionVencida, out.Estado)
	require.NotNil(t, out.Plan)
	assert.Equal(t, "Pro", out.Plan.Nombre)
}

func TestSuscripcionUseCase_GetActiva_SinSuscripcion(t *testing.T) {
	repo := new(suscripcionRepoMock)
	uc := usecase.NewSuscripcionUseCase(repo)

	repo.On("GetActivaByFerreteria", ferreteriaA).Return((*entity.Suscripcion)(nil), nil)

	out, err := uc.GetActiva(ferreteriaA)
	require.NoError(t, err)
	assert.Nil(t, out)
	repo.AssertNotCalled(t, "GetPlanByID", mock.Anything)
}

func TestSuscripcionUseCase_Suscribir_CierraActivasPrevias(t *testing.T) {
	repo := new(suscripcionRepoMock)
	uc := usecase.NewSuscripcionUseCase(repo)

	repo.On("GetPlanByID", "plan-pro").Return(planPro(), nil)
	repo.On("CerrarActivas", ferreteriaA, entity.SuscripcionCancelada).Return(nil)
	repo.On("Create", mock.MatchedBy(func(s *entity.Suscripcion) bool {
		return s.FerreteriaID == ferreteriaA &&
			s.PlanID == "plan-pro" &&
			s.Estado == entity.SuscripcionActiva &&
			s.FechaFin != nil
	})).Return(nil)

	out, err := uc.Suscribir(ferreteriaA, dto.CreateSuscripcionRequest{PlanID: "plan-pro", Meses: 3})
	require.NoError(t, err)
	assert.Equal(t, entity.SuscripcionActiva, out.Estado)
	require.NotNil(t, out.FechaFin)
	// Ventana de 3 meses desde hoy.
	esperado := time.Now().AddDate(0, 3, 0)
	assert.WithinDuration(t, esperado, *out.FechaFin, time.Minute)
	repo.AssertCalled(t, "CerrarActivas", ferreteriaA, entity.SuscripcionCancelada)
}

func TestSuscripcionUseCase_Suscribir_PlanInexistente(t *testing.T) {
	repo := new(suscripcionRepoMock)
	uc := usecase.NewSuscripcionUseCase(repo)

	repo.On("GetPlanByID", "plan-fantasma").Return((*entity.Plan)(nil), nil)

	_, err := uc.Suscribir(ferreteriaA, dto.CreateSuscripcionRequest{PlanID: "plan-fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "CerrarActivas", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}
