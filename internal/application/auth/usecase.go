package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
	"github.com/invenmovil/inventario-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Mailer es el contrato mínimo para el correo de recuperación de contraseña.
// Lo implementa infrastructure/mailer; la interfaz evita acoplar auth a SMTP.
type Mailer interface {
	SendPasswordReset(toEmail, token string) error
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación
// de contraseña. Es la única vía por la que se asignan roles:
// el registro siempre escribe "user"; un admin se promueve editando la DB.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	resetRepo repository.PasswordResetRepository
	mailer    Mailer
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, resetRepo repository.PasswordResetRepository, mailer Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, resetRepo: resetRepo, mailer: mailer, jwtCfg: jwtCfg}
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const resetTokenTTL = time.Hour

// Register crea la identidad: valida email y contraseña, hashea con bcrypt y
// persiste el usuario con rol "user". Devuelve el perfil y un token de sesión.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !emailRegex.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrWeakPassword
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		// Igual que el cliente móvil: sin nombre, se usa la parte local del email.
		name = emailLocalPart(email)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  name,
		Role:         entity.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica email/password, completa defaults de perfil que falten y
// genera el JWT con uid y rol. El rol del token determina el stack de rutas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}
	if !user.Active {
		return nil, domain.ErrUserDisabled
	}
	if err := uc.fillProfileDefaults(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// GetProfile devuelve el perfil del usuario autenticado (GET /api/auth/me).
func (uc *AuthUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ResetPassword genera un token de recuperación de un solo uso, guarda su
// hash con vencimiento de una hora y envía el correo. Operación única, sin
// reintentos: si el correo falla, el error llega al llamador.
func (uc *AuthUseCase) ResetPassword(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegex.MatchString(email) {
		return domain.ErrInvalidEmail
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	token, err := newResetToken()
	if err != nil {
		return err
	}
	expires := time.Now().Add(resetTokenTTL).Unix()
	if err := uc.resetRepo.Create(hashToken(token), user.ID, expires); err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(user.Email, token)
}

// ConfirmReset consume el token enviado por correo y fija la nueva contraseña.
func (uc *AuthUseCase) ConfirmReset(token, newPassword string) error {
	if len(newPassword) < 6 {
		return domain.ErrWeakPassword
	}
	userID, err := uc.resetRepo.Consume(hashToken(token), time.Now().Unix())
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePasswordHash(userID, string(hash))
}

// fillProfileDefaults completa en la DB los campos de perfil que falten
// (nombre vacío, rol vacío). Es el equivalente a la creación perezosa del
// documento de perfil en el cliente original.
func (uc *AuthUseCase) fillProfileDefaults(user *entity.User) error {
	if user.Role == "" {
		user.Role = entity.RoleUser
		user.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(user); err != nil {
			return err
		}
	}
	if strings.TrimSpace(user.DisplayName) == "" {
		user.DisplayName = emailLocalPart(user.Email)
		if err := uc.userRepo.UpdateDisplayName(user.ID, user.DisplayName); err != nil {
			return err
		}
	}
	return nil
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		Role:          u.Role,
		Active:        u.Active,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
