package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidEmail       = errors.New("email inválido")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUserDisabled       = errors.New("esta cuenta ha sido deshabilitada")
	ErrWrongPassword      = errors.New("contraseña incorrecta")
	ErrWeakPassword       = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrSamePassword       = errors.New("la nueva contraseña debe ser diferente a la actual")
	ErrResetTokenInvalid  = errors.New("token de recuperación inválido o expirado")
	ErrSerialRequired     = errors.New("el número de serie es requerido")
	ErrEstadoInvalido     = errors.New("estado de equipo inválido")
	ErrImageTooLarge      = errors.New("la imagen excede el tamaño máximo de 5 MB")
	ErrNotAnImage         = errors.New("el archivo no es una imagen")
	ErrNotAvailable       = errors.New("operación no disponible temporalmente")
)
