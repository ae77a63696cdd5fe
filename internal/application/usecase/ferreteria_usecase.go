package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
	"github.com/ferreplus/ferreteria-api/pkg/rut"
)

// FerreteriaUseCase casos de uso CRUD para ferreterías (tenants del portal).
type FerreteriaUseCase struct {
	repo repository.FerreteriaRepository
}

// NewFerreteriaUseCase construye el caso de uso.
func NewFerreteriaUseCase(repo repository.FerreteriaRepository) *FerreteriaUseCase {
	return &FerreteriaUseCase{repo: repo}
}

// Create valida el RUT (formato + dígito verificador), genera la API key y
// persiste. ErrInvalidRUT si el RUT no pasa, ErrDuplicate si ya existe.
func (uc *FerreteriaUseCase) Create(in dto.CreateFerreteriaRequest) (*dto.FerreteriaResponse, error) {
	if err := rut.Validate(in.RUT); err != nil {
		return nil, domain.ErrInvalidRUT
	}
	normalizado, err := rut.Normalize(in.RUT)
	if err != nil {
		return nil, domain.ErrInvalidRUT
	}
	existing, _ := uc.repo.GetByRUT(normalizado)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	ferreteria := &entity.Ferreteria{
		ID:          uuid.New().String(),
		RUT:         normalizado,
		RazonSocial: in.RazonSocial,
		Direccion:   in.Direccion,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Telefono:    in.Telefono,
		APIKey:      uuid.New().String(),
		Horario:     in.Horario,
		Descripcion: in.Descripcion,
		Estado:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ferreteria); err != nil {
		return nil, err
	}
	out := toFerreteriaResponse(ferreteria)
	out.APIKey = ferreteria.APIKey // única vez que se expone
	return out, nil
}

// GetByID obtiene una ferretería por ID. Nil si no existe.
func (uc *FerreteriaUseCase) GetByID(id string) (*dto.FerreteriaResponse, error) {
	ferreteria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ferreteria == nil {
		return nil, nil
	}
	return toFerreteriaResponse(ferreteria), nil
}

// Update actualiza campos parciales. El RUT es inmutable después de crear.
func (uc *FerreteriaUseCase) Update(id string, in dto.UpdateFerreteriaRequest) (*dto.FerreteriaResponse, error) {
	ferreteria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ferreteria == nil {
		return nil, nil
	}
	if in.RazonSocial != nil {
		ferreteria.RazonSocial = *in.RazonSocial
	}
	if in.Direccion != nil {
		ferreteria.Direccion = *in.Direccion
	}
	if in.Lat != nil {
		ferreteria.Lat = *in.Lat
	}
	if in.Lng != nil {
		ferreteria.Lng = *in.Lng
	}
	if in.Telefono != nil {
		ferreteria.Telefono = *in.Telefono
	}
	if len(in.Horario) > 0 {
		ferreteria.Horario = in.Horario
	}
	if in.Descripcion != nil {
		ferreteria.Descripcion = *in.Descripcion
	}
	if in.Estado != nil {
		ferreteria.Estado = *in.Estado
	}
	ferreteria.UpdatedAt = time.Now()
	if err := uc.repo.Update(ferreteria); err != nil {
		return nil, err
	}
	return toFerreteriaResponse(ferreteria), nil
}

// List lista ferreterías con paginación.
func (uc *FerreteriaUseCase) List(limit, offset int) (*dto.FerreteriaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FerreteriaResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFerreteriaResponse(f))
	}
	return &dto.FerreteriaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una ferretería. ErrNotFound si no existía.
func (uc *FerreteriaUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toFerreteriaResponse(f *entity.Ferreteria) *dto.FerreteriaResponse {
	if f == nil {
		return nil
	}
	return &dto.FerreteriaResponse{
		ID:          f.ID,
		RUT:         f.RUT,
		RazonSocial: f.RazonSocial,
		Direccion:   f.Direccion,
		Lat:         f.Lat,
		Lng:         f.Lng,
		Telefono:    f.Telefono,
		Horario:     f.Horario,
		Descripcion: f.Descripcion,
		Estado:      f.Estado,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
