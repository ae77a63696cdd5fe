package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos, siempre acotados a la
// ferretería del token. El límite de productos del plan activo se verifica en
// Create.
type ProductoUseCase struct {
	repo            repository.ProductoRepository
	suscripcionRepo repository.SuscripcionRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, suscripcionRepo repository.SuscripcionRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, suscripcionRepo: suscripcionRepo}
}

// Create crea un producto en la ferretería indicada.
// ErrInvalidInput con precio negativo; ErrDuplicate si el SKU ya existe en la
// ferretería; ErrConflict si el plan activo ya no admite más productos.
func (uc *ProductoUseCase) Create(ferreteriaID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Precio.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByFerreteriaAndSKU(ferreteriaID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkLimitePlan(ferreteriaID); err != nil {
		return nil, err
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:           uuid.New().String(),
		FerreteriaID: ferreteriaID,
		CategoriaID:  in.CategoriaID,
		SKU:          in.SKU,
		Nombre:       in.Nombre,
		Precio:       in.Precio,
		Stock:        in.Stock,
		ImagenURL:    in.ImagenURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// checkLimitePlan compara el conteo actual contra MaxProductos del plan activo.
// Sin suscripción activa o con MaxProductos = 0 no hay límite.
func (uc *ProductoUseCase) checkLimitePlan(ferreteriaID string) error {
	sus, err := uc.suscripcionRepo.GetActivaByFerreteria(ferreteriaID)
	if err != nil || sus == nil {
		return nil
	}
	plan, err := uc.suscripcionRepo.GetPlanByID(sus.PlanID)
	if err != nil || plan == nil || plan.MaxProductos <= 0 {
		return nil
	}
	count, err := uc.repo.CountByFerreteria(ferreteriaID)
	if err != nil {
		return err
	}
	if count >= plan.MaxProductos {
		return domain.ErrConflict
	}
	return nil
}

// GetByID obtiene un producto, verificando que pertenezca a la ferretería.
// Nil si no existe; ErrForbidden si es de otro tenant.
func (uc *ProductoUseCase) GetByID(ferreteriaID, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if producto.FerreteriaID != ferreteriaID {
		return nil, domain.ErrForbidden
	}
	return toProductoResponse(producto), nil
}

// Update actualiza campos parciales, con la misma verificación de tenant.
func (uc *ProductoUseCase) Update(ferreteriaID, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if producto.FerreteriaID != ferreteriaID {
		return nil, domain.ErrForbidden
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.Stock = *in.Stock
	}
	if in.CategoriaID != nil {
		producto.CategoriaID = *in.CategoriaID
	}
	if in.ImagenURL != nil {
		producto.ImagenURL = *in.ImagenURL
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista los productos de la ferretería con paginación.
func (uc *ProductoUseCase) List(ferreteriaID string, limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.repo.ListByFerreteria(ferreteriaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto de la ferretería. ErrNotFound si no existía,
// ErrForbidden si pertenece a otra.
func (uc *ProductoUseCase) Delete(ferreteriaID, id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	if producto.FerreteriaID != ferreteriaID {
		return domain.ErrForbidden
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:           p.ID,
		FerreteriaID: p.FerreteriaID,
		CategoriaID:  p.CategoriaID,
		SKU:          p.SKU,
		Nombre:       p.Nombre,
		Precio:       p.Precio,
		Stock:        p.Stock,
		ImagenURL:    p.ImagenURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
