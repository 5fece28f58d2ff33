package dto

import "time"

// CreateInventarioRequest body para POST /api/inventarios.
// Anio llega como string desde el formulario móvil y se convierte a entero
// en el caso de uso, igual que el resto de campos se recortan allí.
type CreateInventarioRequest struct {
	Mes       string `json:"mes" validate:"required"`
	Anio      string `json:"anio" validate:"required"`
	Estado    string `json:"estado" validate:"required"`
	Localidad string `json:"localidad" validate:"required"`
}

// InventarioResponse salida de un inventario.
type InventarioResponse struct {
	ID            string    `json:"id"`
	Mes           string    `json:"mes"`
	Anio          int       `json:"anio"`
	Estado        string    `json:"estado"`
	Localidad     string    `json:"localidad"`
	CreatedBy     string    `json:"created_by"`
	CreatedByName string    `json:"created_by_name"`
	TotalEquipos  int       `json:"total_equipos"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InventarioListResponse listado de inventarios.
type InventarioListResponse struct {
	Inventarios []InventarioResponse `json:"inventarios"`
	Total       int                  `json:"total"`
}
