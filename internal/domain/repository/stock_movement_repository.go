package repository

import (
	"time"

	"github.com/jhoicas/control-inventario/internal/domain/entity"
)

// MovementFilter filtros de listado de movimientos.
type MovementFilter struct {
	ProductID string
	UserID    string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia para StockMovement.
// Los movimientos son inmutables: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(f MovementFilter) ([]*entity.StockMovement, error)
	// ListByProduct historial completo de un producto, más reciente primero.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	// ListByUser historial completo de un usuario, más reciente primero.
	ListByUser(userID string) ([]*entity.StockMovement, error)
	CountByProduct(productID string) (int, error)
	CountByUser(userID string) (int, error)
	// RecentByProducts devuelve hasta perProduct movimientos recientes por
	// producto en una sola consulta (reemplaza el include del ORM original).
	RecentByProducts(productIDs []string, perProduct int) (map[string][]*entity.StockMovement, error)
}
