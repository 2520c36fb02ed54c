package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// ValidUserRole verifica que el rol sea uno de los permitidos.
func ValidUserRole(r string) bool {
	return r == RoleAdmin || r == RoleOperator
}

// User representa un actor del sistema. Email es único; Active es el flag
// de borrado lógico (se conserva la fila si tiene movimientos asociados).
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string // ADMIN, OPERATOR
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
