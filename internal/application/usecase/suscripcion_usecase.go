package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

// SuscripcionUseCase consulta de planes y suscripción de ferreterías.
type SuscripcionUseCase struct {
	repo repository.SuscripcionRepository
}

// NewSuscripcionUseCase construye el caso de uso.
func NewSuscripcionUseCase(repo repository.SuscripcionRepository) *SuscripcionUseCase {
	return &SuscripcionUseCase{repo: repo}
}

// ListPlanes devuelve los planes disponibles.
func (uc *SuscripcionUseCase) ListPlanes() ([]dto.PlanResponse, error) {
	planes, err := uc.repo.ListPlanes()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanResponse, 0, len(planes))
	for _, p := range planes {
		out = append(out, *toPlanResponse(p))
	}
	return out, nil
}

// GetActiva devuelve la suscripción activa de la ferretería con su plan.
// Si la ventana de validez ya venció, se reporta con estado vencida.
// Nil si la ferretería nunca se ha suscrito.
func (uc *SuscripcionUseCase) GetActiva(ferreteriaID string) (*dto.SuscripcionResponse, error) {
	sus, err := uc.repo.GetActivaByFerreteria(ferreteriaID)
	if err != nil {
		return nil, err
	}
	if sus == nil {
		return nil, nil
	}
	if sus.FechaFin != nil && sus.FechaFin.Before(time.Now()) {
		sus.Estado = entity.SuscripcionVencida
	}
	out := &dto.SuscripcionResponse{
		ID:           sus.ID,
		FerreteriaID: sus.FerreteriaID,
		Estado:       sus.Estado,
		FechaInicio:  sus.FechaInicio,
		FechaFin:     sus.FechaFin,
	}
	plan, err := uc.repo.GetPlanByID(sus.PlanID)
	if err != nil {
		return nil, err
	}
	out.Plan = toPlanResponse(plan)
	return out, nil
}

// Suscribir adhiere la ferretería al plan: cierra cualquier suscripción activa
// previa y crea una nueva con ventana de `meses` (1 por defecto).
// ErrNotFound si el plan no existe.
func (uc *SuscripcionUseCase) Suscribir(ferreteriaID string, in dto.CreateSuscripcionRequest) (*dto.SuscripcionResponse, error) {
	plan, err := uc.repo.GetPlanByID(in.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	meses := in.Meses
	if meses <= 0 {
		meses = 1
	}
	if err := uc.repo.CerrarActivas(ferreteriaID, entity.SuscripcionCancelada); err != nil {
		return nil, err
	}
	now := time.Now()
	fin := now.AddDate(0, meses, 0)
	sus := &entity.Suscripcion{
		ID:           uuid.New().String(),
		FerreteriaID: ferreteriaID,
		PlanID:       plan.ID,
		Estado:       entity.SuscripcionActiva,
		FechaInicio:  now,
		FechaFin:     &fin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(sus); err != nil {
		return nil, err
	}
	return &dto.SuscripcionResponse{
		ID:           sus.ID,
		FerreteriaID: sus.FerreteriaID,
		Estado:       sus.Estado,
		FechaInicio:  sus.FechaInicio,
		FechaFin:     sus.FechaFin,
		Plan:         toPlanResponse(plan),
	}, nil
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		PrecioMensual: p.PrecioMensual,
		MaxProductos:  p.MaxProductos,
		Descripcion:   p.Descripcion,
	}
}
