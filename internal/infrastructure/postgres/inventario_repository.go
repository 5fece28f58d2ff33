package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL
// (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const inventarioColumns = `id, mes, anio, estado, localidad, created_by, created_by_name, total_equipos, is_active, created_at, updated_at`

// Create persiste un nuevo inventario.
func (r *InventarioRepo) Create(inv *entity.Inventario) error {
	query := `
		INSERT INTO inventarios (id, mes, anio, estado, localidad, created_by, created_by_name, total_equipos, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Mes, inv.Anio, inv.Estado, inv.Localidad,
		inv.CreatedBy, inv.CreatedByName, inv.TotalEquipos, inv.IsActive,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventario: %w", err)
	}
	return nil
}

// GetByID obtiene un inventario por ID. Devuelve (nil, nil) si no existe.
func (r *InventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventarios WHERE id = $1`
	var inv entity.Inventario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Mes, &inv.Anio, &inv.Estado, &inv.Localidad,
		&inv.CreatedBy, &inv.CreatedByName, &inv.TotalEquipos, &inv.IsActive,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario by id: %w", err)
	}
	return &inv, nil
}

// ListByOwner lista los inventarios creados por un usuario.
func (r *InventarioRepo) ListByOwner(ownerID string) ([]*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventarios WHERE created_by = $1 ORDER BY created_at DESC`
	return r.list(query, ownerID)
}

// ListAll lista todos los inventarios sin filtrar (vista admin).
func (r *InventarioRepo) ListAll() ([]*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventarios ORDER BY created_at DESC`
	return r.list(query)
}

// IncrementTotalEquipos suma delta al contador en una sola sentencia atómica
// y refresca updated_at. Nunca se escribe el contador con un valor absoluto.
func (r *InventarioRepo) IncrementTotalEquipos(id string, delta int) error {
	query := `
		UPDATE inventarios
		SET total_equipos = total_equipos + $2, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("increment total_equipos: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventarioRepo) list(query string, args ...any) ([]*entity.Inventario, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventario
	for rows.Next() {
		var inv entity.Inventario
		if err := rows.Scan(
			&inv.ID, &inv.Mes, &inv.Anio, &inv.Estado, &inv.Localidad,
			&inv.CreatedBy, &inv.CreatedByName, &inv.TotalEquipos, &inv.IsActive,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
