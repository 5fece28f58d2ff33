package inventory

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
)

// InventarioUseCase CRUD de inventarios: creación con validación por campo y
// las dos vistas (propios del usuario y todos, para admin).
type InventarioUseCase struct {
	repo repository.InventarioRepository
}

// NewInventarioUseCase construye el caso de uso con el puerto de persistencia.
func NewInventarioUseCase(repo repository.InventarioRepository) *InventarioUseCase {
	return &InventarioUseCase{repo: repo}
}

// ValidationError error de validación con el campo que falló.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Create valida los cuatro campos, convierte anio a entero y persiste el
// inventario con dueño, nombre del dueño, contador en cero y timestamps.
// Ningún campo en blanco llega a la base de datos.
func (uc *InventarioUseCase) Create(userID, userName string, in dto.CreateInventarioRequest) (*dto.InventarioResponse, error) {
	mes := strings.TrimSpace(in.Mes)
	anioStr := strings.TrimSpace(in.Anio)
	estado := strings.TrimSpace(in.Estado)
	localidad := strings.TrimSpace(in.Localidad)

	if mes == "" {
		return nil, &ValidationError{Field: "mes", Message: "el mes es requerido"}
	}
	if anioStr == "" {
		return nil, &ValidationError{Field: "anio", Message: "el año es requerido"}
	}
	if estado == "" {
		return nil, &ValidationError{Field: "estado", Message: "el estado es requerido"}
	}
	if localidad == "" {
		return nil, &ValidationError{Field: "localidad", Message: "la localidad es requerida"}
	}
	anio, err := strconv.Atoi(anioStr)
	if err != nil {
		return nil, &ValidationError{Field: "anio", Message: "el año debe ser un número"}
	}

	now := time.Now()
	inv := &entity.Inventario{
		ID:            uuid.New().String(),
		Mes:           mes,
		Anio:          anio,
		Estado:        estado,
		Localidad:     localidad,
		CreatedBy:     userID,
		CreatedByName: userName,
		TotalEquipos:  0,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return toInventarioResponse(inv), nil
}

// ListOwn devuelve los inventarios creados por el usuario (vista estándar).
func (uc *InventarioUseCase) ListOwn(userID string) (*dto.InventarioListResponse, error) {
	list, err := uc.repo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// ListAll devuelve todos los inventarios sin filtrar (vista de administrador;
// el control de acceso lo aplica el router, no este caso de uso).
func (uc *InventarioUseCase) ListAll() (*dto.InventarioListResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// GetByID obtiene un inventario por ID.
func (uc *InventarioUseCase) GetByID(id string) (*dto.InventarioResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInventarioResponse(inv), nil
}

func toInventarioResponse(inv *entity.Inventario) *dto.InventarioResponse {
	return &dto.InventarioResponse{
		ID:            inv.ID,
		Mes:           inv.Mes,
		Anio:          inv.Anio,
		Estado:        inv.Estado,
		Localidad:     inv.Localidad,
		CreatedBy:     inv.CreatedBy,
		CreatedByName: inv.CreatedByName,
		TotalEquipos:  inv.TotalEquipos,
		IsActive:      inv.IsActive,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func toListResponse(list []*entity.Inventario) *dto.InventarioListResponse {
	out := &dto.InventarioListResponse{Inventarios: make([]dto.InventarioResponse, 0, len(list))}
	for _, inv := range list {
		out.Inventarios = append(out.Inventarios, *toInventarioResponse(inv))
	}
	out.Total = len(out.Inventarios)
	return out
}
