package repository

import "github.com/jhoicas/control-inventario/internal/domain/entity"

// UserFilter filtros de listado de usuarios.
// Search aplica substring case-insensitive sobre nombre y email.
type UserFilter struct {
	Role   string
	Active *bool
	Search string
	Limit  int
	Offset int
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(f UserFilter) ([]*entity.User, error)
	// Deactivate borrado lógico: active=false, la fila se conserva.
	Deactivate(id string) error
	Delete(id string) error
}
