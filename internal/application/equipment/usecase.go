package equipment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
	"github.com/invenmovil/inventario-api/pkg/logger"
)

// EquipoUseCase CRUD de equipos dentro de un inventario. Mantiene el contador
// total_equipos del padre en sincronía: el alta/baja del equipo y el ±1 del
// contador van en la misma transacción (ver DESIGN.md sobre esta decisión).
type EquipoUseCase struct {
	equipoRepo repository.EquipoRepository
	invRepo    repository.InventarioRepository
	tx         TxRunner
	blobs      BlobStore
	log        *logger.Logger
}

// NewEquipoUseCase construye el caso de uso de equipos.
func NewEquipoUseCase(equipoRepo repository.EquipoRepository, invRepo repository.InventarioRepository, tx TxRunner, blobs BlobStore, log *logger.Logger) *EquipoUseCase {
	return &EquipoUseCase{equipoRepo: equipoRepo, invRepo: invRepo, tx: tx, blobs: blobs, log: log}
}

// ListByInventario devuelve los equipos de un inventario.
func (uc *EquipoUseCase) ListByInventario(inventarioID string) (*dto.EquipoListResponse, error) {
	list, err := uc.equipoRepo.ListByInventario(inventarioID)
	if err != nil {
		return nil, err
	}
	out := &dto.EquipoListResponse{Equipos: make([]dto.EquipoResponse, 0, len(list))}
	for _, eq := range list {
		out.Equipos = append(out.Equipos, *toEquipoResponse(eq))
	}
	out.Total = len(out.Equipos)
	return out, nil
}

// Get obtiene un equipo puntual. Devuelve ErrNotFound si no existe.
func (uc *EquipoUseCase) Get(inventarioID, equipoID string) (*dto.EquipoResponse, error) {
	eq, err := uc.equipoRepo.GetByID(inventarioID, equipoID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	return toEquipoResponse(eq), nil
}

// Create registra un equipo. El serial se valida antes de cualquier I/O y se
// normaliza (trim + mayúsculas). Si hay imagen se sube primero; si la subida
// falla el equipo igual se crea sin imagen y el resultado lleva un warning
// (fallo parcial informado, nunca rollback automático de la imagen).
func (uc *EquipoUseCase) Create(ctx context.Context, inventarioID string, in dto.CreateEquipoRequest, img *ImageUpload) (*dto.CreateEquipoResponse, error) {
	serial := strings.ToUpper(strings.TrimSpace(in.Serial))
	if serial == "" {
		return nil, domain.ErrSerialRequired
	}
	estado := strings.TrimSpace(in.Estado)
	if estado == "" {
		estado = entity.EstadoUsado
	}
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrEstadoInvalido
	}

	inv, err := uc.invRepo.GetByID(inventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	var warning string
	var imagenURL, imagenFileName string
	if img != nil {
		res, upErr := uc.uploadImage(ctx, inventarioID, serial, img)
		if upErr != nil {
			uc.log.Warn().Err(upErr).
				Str("inventario_id", inventarioID).
				Str("serial", serial).
				Msg("no se pudo subir la imagen, el equipo se guarda sin imagen")
			warning = "No se pudo subir la imagen. El equipo se guardó sin imagen."
		} else {
			imagenURL = res.URL
			imagenFileName = res.FileName
		}
	}

	now := time.Now()
	eq := &entity.Equipo{
		ID:             uuid.New().String(),
		InventarioID:   inventarioID,
		Serial:         serial,
		Estado:         estado,
		Observaciones:  strings.TrimSpace(in.Observaciones),
		Tipo:           strings.TrimSpace(in.Tipo),
		ImagenURL:      imagenURL,
		ImagenFileName: imagenFileName,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.tx.Run(ctx, func(equipoRepo repository.EquipoRepository, invRepo repository.InventarioRepository) error {
		if err := equipoRepo.Create(eq); err != nil {
			return err
		}
		return invRepo.IncrementTotalEquipos(inventarioID, 1)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateEquipoResponse{
		Equipo:  *toEquipoResponse(eq),
		Message: "Equipo creado exitosamente",
		Warning: warning,
	}, nil
}

// Update aplica un merge parcial sobre el equipo: solo los campos presentes
// cambian, el serial se normaliza si viene, y updated_at se refresca.
// No toca el contador del inventario.
func (uc *EquipoUseCase) Update(ctx context.Context, inventarioID, equipoID string, in dto.UpdateEquipoRequest, img *ImageUpload) (*dto.EquipoResponse, error) {
	eq, err := uc.equipoRepo.GetByID(inventarioID, equipoID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}

	if in.Serial != nil {
		serial := strings.ToUpper(strings.TrimSpace(*in.Serial))
		if serial == "" {
			return nil, domain.ErrSerialRequired
		}
		eq.Serial = serial
	}
	if in.Estado != nil {
		estado := strings.TrimSpace(*in.Estado)
		if !entity.EstadoValido(estado) {
			return nil, domain.ErrEstadoInvalido
		}
		eq.Estado = estado
	}
	if in.Observaciones != nil {
		eq.Observaciones = strings.TrimSpace(*in.Observaciones)
	}
	if in.Tipo != nil {
		eq.Tipo = strings.TrimSpace(*in.Tipo)
	}

	if img != nil {
		res, upErr := uc.uploadImage(ctx, inventarioID, eq.Serial, img)
		if upErr != nil {
			// En edición la imagen sí es el cambio pedido: el error se propaga.
			return nil, upErr
		}
		eq.ImagenURL = res.URL
		eq.ImagenFileName = res.FileName
	} else if in.RemoveImagen {
		eq.ImagenURL = ""
		eq.ImagenFileName = ""
	}

	eq.UpdatedAt = time.Now()
	if err := uc.equipoRepo.Update(eq); err != nil {
		return nil, err
	}
	return toEquipoResponse(eq), nil
}

// Delete elimina el equipo y descuenta 1 del contador del inventario padre,
// ambos en la misma transacción.
func (uc *EquipoUseCase) Delete(ctx context.Context, inventarioID, equipoID string) error {
	return uc.tx.Run(ctx, func(equipoRepo repository.EquipoRepository, invRepo repository.InventarioRepository) error {
		if err := equipoRepo.Delete(inventarioID, equipoID); err != nil {
			return err
		}
		return invRepo.IncrementTotalEquipos(inventarioID, -1)
	})
}

func toEquipoResponse(eq *entity.Equipo) *dto.EquipoResponse {
	out := &dto.EquipoResponse{
		ID:            eq.ID,
		InventarioID:  eq.InventarioID,
		Serial:        eq.Serial,
		Estado:        eq.Estado,
		Observaciones: eq.Observaciones,
		Tipo:          eq.Tipo,
		Status:        eq.Status,
		CreatedAt:     eq.CreatedAt,
		UpdatedAt:     eq.UpdatedAt,
	}
	if eq.ImagenURL != "" {
		out.ImagenURL = &eq.ImagenURL
	}
	if eq.ImagenFileName != "" {
		out.ImagenFileName = &eq.ImagenFileName
	}
	return out
}
