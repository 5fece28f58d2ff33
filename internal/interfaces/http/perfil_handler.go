package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/application/profile"
	"github.com/invenmovil/inventario-api/internal/domain"
)

// PerfilHandler maneja las operaciones sobre el perfil propio (protegido).
type PerfilHandler struct {
	uc *profile.ProfileUseCase
}

// NewPerfilHandler construye el handler.
func NewPerfilHandler(uc *profile.ProfileUseCase) *PerfilHandler {
	return &PerfilHandler{uc: uc}
}

// UpdateName godoc
// @Summary      Actualizar nombre visible
// @Tags         perfil
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateNameRequest  true  "display_name"
// @Success      200   {object}  dto.UpdateNameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/perfil/nombre [put]
func (h *PerfilHandler) UpdateName(c *fiber.Ctx) error {
	var in dto.UpdateNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if v := profile.ValidateName(in.DisplayName); !v.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: v.Error})
	}
	out, err := h.uc.UpdateUserName(GetUserID(c), in.DisplayName)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña (requiere la actual)
// @Tags         perfil
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "current_password, new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/perfil/password [put]
func (h *PerfilHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangeUserPassword(GetUserID(c), in.CurrentPassword, in.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "current_password y new_password son requeridos"})
		case errors.Is(err, domain.ErrWrongPassword):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "WRONG_PASSWORD", Message: "la contraseña actual es incorrecta"})
		case errors.Is(err, domain.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la nueva contraseña debe tener al menos 6 caracteres"})
		case errors.Is(err, domain.ErrSamePassword):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la nueva contraseña debe ser distinta a la actual"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}

// VerifyPassword godoc
// @Summary      Verificar la contraseña actual (operaciones sensibles)
// @Tags         perfil
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyPasswordRequest  true  "password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/perfil/verificar-password [post]
func (h *PerfilHandler) VerifyPassword(c *fiber.Ctx) error {
	var in dto.VerifyPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.VerifyCurrentPassword(GetUserID(c), in.Password); err != nil {
		if errors.Is(err, domain.ErrWrongPassword) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "WRONG_PASSWORD", Message: "contraseña incorrecta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña verificada"})
}

// UpdateEmail godoc
// @Summary      Cambiar email de acceso
// @Tags         perfil
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEmailRequest  true  "new_email, password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      501   {object}  dto.ErrorResponse
// @Router       /api/perfil/email [put]
func (h *PerfilHandler) UpdateEmail(c *fiber.Ctx) error {
	var in dto.UpdateEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	noChanges, err := h.uc.UpdateUserEmail(GetUserID(c), in.NewEmail, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email inválido"})
		case errors.Is(err, domain.ErrWrongPassword):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "WRONG_PASSWORD", Message: "contraseña incorrecta"})
		case errors.Is(err, domain.ErrNotAvailable):
			return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: "el cambio de email no está disponible por ahora"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if noChanges {
		return c.JSON(dto.MessageResponse{Message: "el email recibido es igual al actual, sin cambios"})
	}
	return c.JSON(dto.MessageResponse{Message: "email actualizado"})
}
