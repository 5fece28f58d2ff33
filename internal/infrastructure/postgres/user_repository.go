package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, password_hash, display_name, role, active, email_verified, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, display_name, role, active, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Role,
		user.Active, user.EmailVerified, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// Update actualiza los campos mutables del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, display_name = $4, role = $5,
			active = $6, email_verified = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Role,
		user.Active, user.EmailVerified, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateDisplayName actualiza solo el nombre visible.
func (r *UserRepo) UpdateDisplayName(id, displayName string) error {
	query := `UPDATE users SET display_name = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, displayName)
	if err != nil {
		return fmt.Errorf("update display name: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePasswordHash actualiza solo el hash de contraseña.
func (r *UserRepo) UpdatePasswordHash(id, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role,
		&u.Active, &u.EmailVerified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

var _ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)

// PasswordResetRepo persiste tokens de recuperación (hash, nunca el token plano).
type PasswordResetRepo struct {
	q Querier
}

// NewPasswordResetRepository construye el adaptador de tokens de recuperación.
func NewPasswordResetRepository(q Querier) *PasswordResetRepo {
	return &PasswordResetRepo{q: q}
}

// Create guarda el hash del token con su vencimiento.
func (r *PasswordResetRepo) Create(tokenHash, userID string, expiresAtUnix int64) error {
	query := `
		INSERT INTO password_resets (token_hash, user_id, expires_at, used)
		VALUES ($1, $2, $3, false)`
	_, err := r.q.Exec(context.Background(), query, tokenHash, userID, time.Unix(expiresAtUnix, 0))
	if err != nil {
		return fmt.Errorf("insert password reset: %w", err)
	}
	return nil
}

// Consume marca el token como usado si está vigente y devuelve el userID.
// El UPDATE condicional evita que un token se consuma dos veces.
func (r *PasswordResetRepo) Consume(tokenHash string, nowUnix int64) (string, error) {
	query := `
		UPDATE password_resets SET used = true
		WHERE token_hash = $1 AND used = false AND expires_at > $2
		RETURNING user_id`
	var userID string
	err := r.q.QueryRow(context.Background(), query, tokenHash, time.Unix(nowUnix, 0)).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("consume password reset: %w", err)
	}
	return userID, nil
}
