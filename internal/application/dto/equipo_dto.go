package dto

import "time"

// CreateEquipoRequest body para POST /api/inventarios/:id/equipos.
// La imagen viaja aparte como archivo multipart; aquí solo los campos.
type CreateEquipoRequest struct {
	Serial        string `json:"serial" form:"serial" validate:"required"`
	Estado        string `json:"estado" form:"estado" validate:"omitempty,oneof=nuevo usado reparacion danado"`
	Observaciones string `json:"observaciones" form:"observaciones"`
	Tipo          string `json:"tipo" form:"tipo"`
}

// UpdateEquipoRequest body para PUT. Campos nil no se tocan (merge parcial).
type UpdateEquipoRequest struct {
	Serial        *string `json:"serial" form:"serial"`
	Estado        *string `json:"estado" form:"estado"`
	Observaciones *string `json:"observaciones" form:"observaciones"`
	Tipo          *string `json:"tipo" form:"tipo"`
	// RemoveImagen en true borra la referencia a la imagen actual.
	RemoveImagen bool `json:"remove_imagen" form:"remove_imagen"`
}

// EquipoResponse salida de un equipo.
type EquipoResponse struct {
	ID             string    `json:"id"`
	InventarioID   string    `json:"inventario_id"`
	Serial         string    `json:"serial"`
	Estado         string    `json:"estado"`
	Observaciones  string    `json:"observaciones"`
	Tipo           string    `json:"tipo"`
	ImagenURL      *string   `json:"imagen_url"`
	ImagenFileName *string   `json:"imagen_file_name,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EquipoListResponse listado de equipos de un inventario.
type EquipoListResponse struct {
	Equipos []EquipoResponse `json:"equipos"`
	Total   int              `json:"total"`
}

// CreateEquipoResponse salida del alta. Warning se llena cuando el equipo se
// creó pero la subida de la imagen falló (el registro queda sin imagen).
type CreateEquipoResponse struct {
	Equipo  EquipoResponse `json:"equipo"`
	Message string         `json:"message"`
	Warning string         `json:"warning,omitempty"`
}
