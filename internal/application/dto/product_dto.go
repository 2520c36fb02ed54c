package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	Status      string `json:"status" validate:"required,oneof=ACTIVE INACTIVE UNDER_MAINTENANCE"`
}

// UpdateProductRequest entrada para actualizar un producto (merge parcial).
// Quantity solo se ajusta aquí administrativamente; los movimientos usan el motor.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE UNDER_MAINTENANCE"`
	Active      *bool   `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductWithMovements producto anotado con sus movimientos recientes.
type ProductWithMovements struct {
	ProductResponse
	Movements []MovementResponse `json:"movements"`
}
