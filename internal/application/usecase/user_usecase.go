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

// UserUseCase casos de uso CRUD para usuarios. El email es único; la
// verificación corre aquí y además la respalda la constraint de la BD.
type UserUseCase struct {
	repo    repository.UserRepository
	movRepo repository.StockMovementRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, movRepo repository.StockMovementRepository) *UserUseCase {
	return &UserUseCase{repo: repo, movRepo: movRepo}
}

// Create crea un usuario con active=true. Falla si el email ya está en uso.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || !entity.ValidUserRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario con su historial de movimientos.
func (uc *UserUseCase) GetByID(id string) (*dto.UserWithMovements, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	movements, err := uc.movRepo.ListByUser(id)
	if err != nil {
		return nil, err
	}
	out := &dto.UserWithMovements{
		UserResponse: *toUserResponse(user),
		Movements:    make([]dto.MovementResponse, 0, len(movements)),
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, *inventory.ToMovementResponse(m))
	}
	return out, nil
}

// Update aplica un merge parcial. Si cambia el email, se re-verifica la
// unicidad contra el resto de usuarios; mantener el propio email es válido.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidUserRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina el usuario si no tiene movimientos; si tiene al menos uno,
// lo desactiva (borrado lógico) para preservar el historial.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	count, err := uc.movRepo.CountByUser(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return uc.repo.Deactivate(id)
	}
	return uc.repo.Delete(id)
}

// List lista usuarios con filtros, ordenados por nombre.
func (uc *UserUseCase) List(f repository.UserFilter) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
