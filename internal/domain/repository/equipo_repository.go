package repository

import "github.com/invenmovil/inventario-api/internal/domain/entity"

// EquipoRepository define el puerto de persistencia para Equipo (DIP).
type EquipoRepository interface {
	Create(eq *entity.Equipo) error
	GetByID(inventarioID, equipoID string) (*entity.Equipo, error)
	ListByInventario(inventarioID string) ([]*entity.Equipo, error)
	Update(eq *entity.Equipo) error
	// Delete devuelve ErrNotFound si el equipo no existe en ese inventario.
	Delete(inventarioID, equipoID string) error
}
