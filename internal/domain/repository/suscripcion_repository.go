package repository

import "github.com/ferreplus/ferreteria-api/internal/domain/entity"

// SuscripcionRepository define el puerto de persistencia para Plan y Suscripcion (DIP).
type SuscripcionRepository interface {
	ListPlanes() ([]*entity.Plan, error)
	GetPlanByID(id string) (*entity.Plan, error)
	GetActivaByFerreteria(ferreteriaID string) (*entity.Suscripcion, error)
	Create(suscripcion *entity.Suscripcion) error
	CerrarActivas(ferreteriaID, estado string) error
}
