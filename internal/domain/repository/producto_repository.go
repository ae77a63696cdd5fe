package repository

import "github.com/ferreplus/ferreteria-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByFerreteriaAndSKU(ferreteriaID, sku string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	AjustarStock(productoID string, delta int) error
	ListByFerreteria(ferreteriaID string, limit, offset int) ([]*entity.Producto, error)
	CountByFerreteria(ferreteriaID string) (int, error)
	Delete(id string) (bool, error)
}
