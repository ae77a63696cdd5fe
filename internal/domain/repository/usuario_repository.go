package repository

import "github.com/ferreplus/ferreteria-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// La implementación vive en infrastructure.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	GetByEmailAndFerreteria(email, ferreteriaID string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	ListByFerreteria(ferreteriaID string, limit, offset int) ([]*entity.Usuario, error)
	Delete(id string) (bool, error)
}
