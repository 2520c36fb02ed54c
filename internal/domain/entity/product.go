package entity

import "time"

// Estados operativos de un producto.
const (
	ProductStatusActive           = "ACTIVE"
	ProductStatusInactive         = "INACTIVE"
	ProductStatusUnderMaintenance = "UNDER_MAINTENANCE"
)

// ValidProductStatus verifica que el estado sea uno de los permitidos.
func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusUnderMaintenance:
		return true
	}
	return false
}

// Product representa un producto del inventario. Quantity solo se modifica
// vía el motor de movimientos; Active es el flag de borrado lógico.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Quantity    int
	Status      string // ACTIVE, INACTIVE, UNDER_MAINTENANCE
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
