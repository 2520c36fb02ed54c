package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry      = "ENTRY"      // entrada: suma al stock
	MovementTypeExit       = "EXIT"       // salida: resta del stock
	MovementTypeAdjustment = "ADJUSTMENT" // ajuste: fija el stock en la cantidad indicada
)

// ValidMovementType verifica que el tipo sea uno de los permitidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntry, MovementTypeExit, MovementTypeAdjustment:
		return true
	}
	return false
}

// StockMovement representa un movimiento de stock contra un producto.
// Inmutable una vez creado: nunca se actualiza ni se elimina, y siempre
// nace en la misma transacción que el cambio de cantidad del producto.
type StockMovement struct {
	ID        string
	ProductID string
	UserID    string
	Type      string // ENTRY, EXIT, ADJUSTMENT
	Quantity  int    // siempre > 0; para ADJUSTMENT es el valor absoluto final
	Reason    string
	Note      string
	Date      time.Time
}
