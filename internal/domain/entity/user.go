package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User representa una cuenta del sistema. Los vendedores se registran por
// formulario; el admin se aprovisiona fuera de banda (cmd/seedadmin).
// El teléfono es el identificador de login y es único.
type User struct {
	ID           string
	Name         string
	Phone        string
	Location     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, seller
	CreatedAt    time.Time
}

// IsSeller indica si la cuenta tiene rol de vendedor.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
