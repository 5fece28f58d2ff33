package entity

import "time"

// Inventario representa un levantamiento de inventario: mes/año y ubicación,
// propiedad de un usuario. TotalEquipos es un contador denormalizado que solo
// se muta en ±1 junto con el alta/baja de un equipo, nunca se escribe directo.
type Inventario struct {
	ID            string
	Mes           string
	Anio          int
	Estado        string // región/departamento
	Localidad     string
	CreatedBy     string // ID del usuario dueño
	CreatedByName string
	TotalEquipos  int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
