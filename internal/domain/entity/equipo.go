package entity

import "time"

// Condiciones válidas para Equipo.Estado.
const (
	EstadoNuevo      = "nuevo"
	EstadoUsado      = "usado"
	EstadoReparacion = "reparacion"
	EstadoDanado     = "danado"
)

// EstadoValido reporta si la condición es una de las cuatro conocidas.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoNuevo, EstadoUsado, EstadoReparacion, EstadoDanado:
		return true
	}
	return false
}

// Equipo es un ítem registrado dentro de exactamente un Inventario.
// Serial se almacena siempre recortado y en mayúsculas. ImagenURL es una URL
// remota o vacía; las rutas locales del dispositivo nunca se persisten.
type Equipo struct {
	ID             string
	InventarioID   string
	Serial         string
	Estado         string // nuevo, usado, reparacion, danado
	Observaciones  string
	Tipo           string
	ImagenURL      string // "" = sin imagen
	ImagenFileName string
	Status         string // active
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
