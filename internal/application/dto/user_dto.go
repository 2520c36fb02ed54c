package dto

import "time"

// CreateUserRequest entrada para crear un usuario.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=ADMIN OPERATOR"`
}

// UpdateUserRequest entrada para actualizar un usuario (merge parcial).
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   *string `json:"role" validate:"omitempty,oneof=ADMIN OPERATOR"`
	Active *bool   `json:"active"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserWithMovements usuario anotado con su historial de movimientos.
type UserWithMovements struct {
	UserResponse
	Movements []MovementResponse `json:"movements"`
}
