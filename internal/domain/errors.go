package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrMovementNotFound   = errors.New("movimiento no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser mayor que cero")
	ErrProductInactive    = errors.New("producto inactivo no puede recibir movimientos")
	ErrUserInactive       = errors.New("usuario inactivo no puede registrar movimientos")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
