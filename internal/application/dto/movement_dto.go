package dto

import "time"

// PostMovementRequest body para POST /movements.
type PostMovementRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	UserID    string `json:"userId" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=ENTRY EXIT ADJUSTMENT"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason,omitempty"`
	Note      string `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	Note      string    `json:"note,omitempty"`
	Date      time.Time `json:"date"`
}
