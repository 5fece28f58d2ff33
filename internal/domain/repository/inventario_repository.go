package repository

import "github.com/invenmovil/inventario-api/internal/domain/entity"

// InventarioRepository define el puerto de persistencia para Inventario (DIP).
// El contador TotalEquipos no tiene operación de escritura directa: solo se
// muta vía IncrementTotalEquipos, en la misma transacción que el equipo.
type InventarioRepository interface {
	Create(inv *entity.Inventario) error
	GetByID(id string) (*entity.Inventario, error)
	ListByOwner(ownerID string) ([]*entity.Inventario, error)
	ListAll() ([]*entity.Inventario, error)
	// IncrementTotalEquipos suma delta (±1) al contador y refresca updated_at.
	IncrementTotalEquipos(id string, delta int) error
}
