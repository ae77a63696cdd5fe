package repository

import "github.com/ferreplus/ferreteria-api/internal/domain/entity"

// FerreteriaRepository define el puerto de persistencia para Ferreteria (DIP).
type FerreteriaRepository interface {
	Create(ferreteria *entity.Ferreteria) error
	GetByID(id string) (*entity.Ferreteria, error)
	GetByRUT(rut string) (*entity.Ferreteria, error)
	Update(ferreteria *entity.Ferreteria) error
	List(limit, offset int) ([]*entity.Ferreteria, error)
	Delete(id string) (bool, error)
}
