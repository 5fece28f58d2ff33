package entity

import "time"

// Roles válidos para User. La promoción a admin se hace por edición directa
// en la base de datos; el registro siempre asigna RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa la identidad autenticable junto con su perfil denormalizado
// (rol y nombre visible). Es la única fuente de verdad para el enrutamiento por rol.
type User struct {
	ID            string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	DisplayName   string
	Role          string // user, admin
	Active        bool
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
