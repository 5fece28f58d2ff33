package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invenmovil/inventario-api/internal/application/auth"
	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/application/inventory"
	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
)

// InventarioHandler maneja las peticiones HTTP para Inventario (protegido).
type InventarioHandler struct {
	uc     *inventory.InventarioUseCase
	authUC *auth.AuthUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventory.InventarioUseCase, authUC *auth.AuthUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc, authUC: authUC}
}

// Create godoc
// @Summary      Crear inventario
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventarioRequest  true  "mes, anio, estado, localidad"
// @Success      201   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventarios [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Todo inventario lleva el nombre de su dueño; si el perfil no se puede
	// leer en este momento, se estampa el uid en lugar de un nombre vacío.
	userID := GetUserID(c)
	userName := userID
	if profile, err := h.authUC.GetProfile(userID); err == nil && profile.DisplayName != "" {
		userName = profile.DisplayName
	}
	out, err := h.uc.Create(userID, userName, in)
	if err != nil {
		var vErr *inventory.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inventarios propios
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventarioListResponse
// @Router       /api/inventarios [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOwn(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener inventario por ID
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inventario"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id} [get]
func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	out, ok := h.loadWithAccess(c, c.Params("id"))
	if !ok {
		return nil
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los inventarios (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventarioListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/inventarios [get]
func (h *InventarioHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *InventarioHandler) loadWithAccess(c *fiber.Ctx, id string) (*dto.InventarioResponse, bool) {
	return loadInventarioWithAccess(c, h.uc, id)
}

// loadInventarioWithAccess carga el inventario y aplica la regla de acceso: el
// dueño o un admin. Si algo falla, responde el error y devuelve ok=false; el
// handler solo debe retornar nil en ese caso (la respuesta ya fue escrita).
func loadInventarioWithAccess(c *fiber.Ctx, uc *inventory.InventarioUseCase, id string) (*dto.InventarioResponse, bool) {
	if id == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
		return nil, false
	}
	out, err := uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
			return nil, false
		}
		_ = c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		return nil, false
	}
	if GetRole(c) != entity.RoleAdmin && out.CreatedBy != GetUserID(c) {
		_ = c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el inventario pertenece a otro usuario"})
		return nil, false
	}
	return out, true
}
