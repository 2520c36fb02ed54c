package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/application/inventory"
	"github.com/jhoicas/control-inventario/internal/domain"
	"github.com/jhoicas/control-inventario/internal/domain/entity"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad se maneja vía
// movimientos; aquí solo se permite el ajuste administrativo directo.
type ProductUseCase struct {
	repo    repository.ProductRepository
	movRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movRepo repository.StockMovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo}
}

// Create crea un producto con active=true y cantidad inicial (0 por defecto).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || !entity.ValidProductStatus(in.Status) || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Status:      in.Status,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con su historial completo de movimientos.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductWithMovements, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	movements, err := uc.movRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return withMovements(product, movements), nil
}

// Update aplica un merge parcial sobre el producto existente.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Status != nil {
		if !entity.ValidProductStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto si no tiene movimientos; si tiene al menos uno,
// lo desactiva (borrado lógico) para preservar el historial.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	count, err := uc.movRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return uc.repo.Deactivate(id)
	}
	return uc.repo.Delete(id)
}

// List lista productos con filtros, cada uno anotado con sus 5 movimientos
// más recientes (una sola consulta adicional, no un include por fila).
func (uc *ProductUseCase) List(f repository.ProductFilter) ([]dto.ProductWithMovements, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	recent, err := uc.movRepo.RecentByProducts(ids, 5)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductWithMovements, 0, len(list))
	for _, p := range list {
		items = append(items, *withMovements(p, recent[p.ID]))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Status:      p.Status,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func withMovements(p *entity.Product, movements []*entity.StockMovement) *dto.ProductWithMovements {
	out := &dto.ProductWithMovements{
		ProductResponse: *toProductResponse(p),
		Movements:       make([]dto.MovementResponse, 0, len(movements)),
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, *inventory.ToMovementResponse(m))
	}
	return out
}
