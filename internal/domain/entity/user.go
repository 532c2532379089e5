package entity

import "time"

// Roles válidos para User.
const (
	RoleOwner = "Business Owner"
)

// User representa un usuario del sistema (pertenece a una Business).
type User struct {
	ID           string
	BusinessID   string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
