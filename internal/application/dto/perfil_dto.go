package dto

// UpdateNameRequest entrada para actualizar el nombre visible.
type UpdateNameRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=2,max=50"`
}

// UpdateNameResponse salida de la actualización de nombre. NoChanges es true
// cuando el nombre recibido coincide con el actual y no se escribió nada.
type UpdateNameResponse struct {
	Message     string `json:"message"`
	DisplayName string `json:"display_name"`
	NoChanges   bool   `json:"no_changes,omitempty"`
}

// VerifyPasswordRequest entrada para verificar la contraseña actual (operaciones sensibles).
type VerifyPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// UpdateEmailRequest entrada para cambiar el email (requiere contraseña actual).
type UpdateEmailRequest struct {
	NewEmail string `json:"new_email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
