package profile

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
)

// ProfileUseCase operaciones estrechas sobre el perfil del usuario autenticado:
// nombre visible, contraseña y verificación de credenciales.
type ProfileUseCase struct {
	userRepo repository.UserRepository
}

// NewProfileUseCase construye el caso de uso de perfil.
func NewProfileUseCase(userRepo repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo}
}

// NameValidation resultado de ValidateName.
type NameValidation struct {
	IsValid     bool
	CleanedName string
	Error       string
}

// ValidateName valida el formato del nombre: no vacío y entre 2 y 50
// caracteres tras recortar. Función pura, sin I/O.
func ValidateName(name string) NameValidation {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NameValidation{Error: "El nombre no puede estar vacío"}
	}
	if len(trimmed) < 2 {
		return NameValidation{Error: "El nombre debe tener al menos 2 caracteres"}
	}
	if len(trimmed) > 50 {
		return NameValidation{Error: "El nombre no puede exceder 50 caracteres"}
	}
	return NameValidation{IsValid: true, CleanedName: trimmed}
}

// UpdateUserName valida y actualiza el nombre visible. Si el nombre coincide
// con el actual no se escribe nada y se devuelve NoChanges=true.
func (uc *ProfileUseCase) UpdateUserName(userID, newName string) (*dto.UpdateNameResponse, error) {
	v := ValidateName(newName)
	if !v.IsValid {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if v.CleanedName == user.DisplayName {
		return &dto.UpdateNameResponse{
			Message:     "El nombre ya está actualizado",
			DisplayName: user.DisplayName,
			NoChanges:   true,
		}, nil
	}
	if err := uc.userRepo.UpdateDisplayName(userID, v.CleanedName); err != nil {
		return nil, err
	}
	return &dto.UpdateNameResponse{
		Message:     "Nombre actualizado correctamente",
		DisplayName: v.CleanedName,
	}, nil
}

// ChangeUserPassword reautentica con la contraseña actual y fija la nueva.
// La nueva debe tener al menos 6 caracteres y ser distinta de la actual.
func (uc *ProfileUseCase) ChangeUserPassword(userID, currentPassword, newPassword string) error {
	if strings.TrimSpace(currentPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return domain.ErrInvalidInput
	}
	if len(newPassword) < 6 {
		return domain.ErrWeakPassword
	}
	if newPassword == currentPassword {
		return domain.ErrSamePassword
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePasswordHash(userID, string(hash))
}

// VerifyCurrentPassword reautentica al usuario para operaciones sensibles.
func (uc *ProfileUseCase) VerifyCurrentPassword(userID, password string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.ErrWrongPassword
	}
	return nil
}

// UpdateUserEmail valida y reautentica, pero el cambio de email sigue
// deshabilitado: requiere un flujo de verificación que aún no existe.
// Si el email coincide con el actual responde sin cambios.
func (uc *ProfileUseCase) UpdateUserEmail(userID, newEmail, password string) (noChanges bool, err error) {
	newEmail = strings.TrimSpace(strings.ToLower(newEmail))
	if newEmail == "" {
		return false, domain.ErrInvalidEmail
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, domain.ErrUserNotFound
	}
	if newEmail == user.Email {
		return true, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return false, domain.ErrWrongPassword
	}
	return false, domain.ErrNotAvailable
}
