package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
)

var _ repository.EquipoRepository = (*EquipoRepo)(nil)

// EquipoRepo implementación de EquipoRepository sobre PostgreSQL (usable con pool o tx).
// Las columnas imagen_url e imagen_file_name son NULLables en la tabla; aquí
// se normalizan a string vacío para que el resto del sistema no maneje nils.
type EquipoRepo struct {
	q Querier
}

// NewEquipoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipoRepository(q Querier) *EquipoRepo {
	return &EquipoRepo{q: q}
}

const equipoColumns = `id, inventario_id, serial, estado, observaciones, tipo, imagen_url, imagen_file_name, status, created_at, updated_at`

// Create persiste un nuevo equipo.
func (r *EquipoRepo) Create(eq *entity.Equipo) error {
	query := `
		INSERT INTO equipos (id, inventario_id, serial, estado, observaciones, tipo, imagen_url, imagen_file_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		eq.ID, eq.InventarioID, eq.Serial, eq.Estado, eq.Observaciones, eq.Tipo,
		nullIfEmpty(eq.ImagenURL), nullIfEmpty(eq.ImagenFileName), eq.Status,
		eq.CreatedAt, eq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert equipo: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID dentro de un inventario. (nil, nil) si no existe.
func (r *EquipoRepo) GetByID(inventarioID, equipoID string) (*entity.Equipo, error) {
	query := `SELECT ` + equipoColumns + ` FROM equipos WHERE inventario_id = $1 AND id = $2`
	row := r.q.QueryRow(context.Background(), query, inventarioID, equipoID)
	eq, err := scanEquipo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo by id: %w", err)
	}
	return eq, nil
}

// ListByInventario lista los equipos de un inventario.
func (r *EquipoRepo) ListByInventario(inventarioID string) ([]*entity.Equipo, error) {
	query := `SELECT ` + equipoColumns + ` FROM equipos WHERE inventario_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, inventarioID)
	if err != nil {
		return nil, fmt.Errorf("list equipos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipo
	for rows.Next() {
		eq, err := scanEquipo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		list = append(list, eq)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables del equipo.
func (r *EquipoRepo) Update(eq *entity.Equipo) error {
	query := `
		UPDATE equipos SET serial = $3, estado = $4, observaciones = $5, tipo = $6,
			imagen_url = $7, imagen_file_name = $8, status = $9, updated_at = $10
		WHERE inventario_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		eq.InventarioID, eq.ID, eq.Serial, eq.Estado, eq.Observaciones, eq.Tipo,
		nullIfEmpty(eq.ImagenURL), nullIfEmpty(eq.ImagenFileName), eq.Status, eq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un equipo. Devuelve ErrNotFound si no existía.
func (r *EquipoRepo) Delete(inventarioID, equipoID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM equipos WHERE inventario_id = $1 AND id = $2`, inventarioID, equipoID)
	if err != nil {
		return fmt.Errorf("delete equipo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEquipo(row pgx.Row) (*entity.Equipo, error) {
	var eq entity.Equipo
	var imagenURL, imagenFileName sql.NullString
	err := row.Scan(
		&eq.ID, &eq.InventarioID, &eq.Serial, &eq.Estado, &eq.Observaciones, &eq.Tipo,
		&imagenURL, &imagenFileName, &eq.Status, &eq.CreatedAt, &eq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	eq.ImagenURL = imagenURL.String
	eq.ImagenFileName = imagenFileName.String
	return &eq, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
