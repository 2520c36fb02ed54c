package repository

import "github.com/jhoicas/control-inventario/internal/domain/entity"

// ProductFilter filtros de listado de productos.
// Search aplica substring case-insensitive sobre nombre y descripción.
type ProductFilter struct {
	Category string
	Status   string
	Active   *bool
	Search   string
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo
	// tiene sentido dentro de una transacción; lo usa el motor de movimientos.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity actualiza solo la cantidad (usado por el motor de movimientos).
	UpdateQuantity(id string, quantity int) error
	List(f ProductFilter) ([]*entity.Product, error)
	// Deactivate borrado lógico: active=false, la fila se conserva.
	Deactivate(id string) error
	Delete(id string) error
}
