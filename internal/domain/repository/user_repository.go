package repository

import "github.com/invenmovil/inventario-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdateDisplayName actualiza solo el nombre visible (perfil).
	UpdateDisplayName(id, displayName string) error
	// UpdatePasswordHash actualiza solo el hash de contraseña.
	UpdatePasswordHash(id, passwordHash string) error
}

// PasswordResetRepository persiste tokens de recuperación de contraseña.
// Se guarda el hash del token, nunca el token plano.
type PasswordResetRepository interface {
	Create(tokenHash, userID string, expiresAtUnix int64) error
	// Consume busca un token vigente y no usado, lo marca usado y devuelve el userID.
	Consume(tokenHash string, nowUnix int64) (userID string, err error)
}
