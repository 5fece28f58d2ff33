package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/application/equipment"
	"github.com/invenmovil/inventario-api/internal/application/inventory"
	"github.com/invenmovil/inventario-api/internal/domain"
)

// EquipoHandler maneja las peticiones HTTP para Equipo, anidado bajo su
// inventario (protegido). El acceso al inventario padre se verifica siempre
// antes de tocar los equipos.
type EquipoHandler struct {
	uc    *equipment.EquipoUseCase
	invUC *inventory.InventarioUseCase
}

// NewEquipoHandler construye el handler.
func NewEquipoHandler(uc *equipment.EquipoUseCase, invUC *inventory.InventarioUseCase) *EquipoHandler {
	return &EquipoHandler{uc: uc, invUC: invUC}
}

// List godoc
// @Summary      Listar equipos de un inventario
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inventario"
// @Success      200  {object}  dto.EquipoListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/equipos [get]
func (h *EquipoHandler) List(c *fiber.Ctx) error {
	inventarioID := c.Params("id")
	if _, ok := loadInventarioWithAccess(c, h.invUC, inventarioID); !ok {
		return nil
	}
	out, err := h.uc.ListByInventario(inventarioID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener equipo por ID
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID del inventario"
// @Param        equipoId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EquipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/equipos/{equipoId} [get]
func (h *EquipoHandler) Get(c *fiber.Ctx) error {
	inventarioID := c.Params("id")
	if _, ok := loadInventarioWithAccess(c, h.invUC, inventarioID); !ok {
		return nil
	}
	out, err := h.uc.Get(inventarioID, c.Params("equipoId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar equipo (JSON o multipart con imagen)
// @Tags         equipos
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id      path      string  true   "ID del inventario"
// @Param        serial  formData  string  true   "Serial del equipo"
// @Param        estado  formData  string  false  "nuevo|usado|reparacion|danado"
// @Param        imagen  formData  file    false  "Foto del equipo (máx 5MB)"
// @Success      201  {object}  dto.CreateEquipoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/equipos [post]
func (h *EquipoHandler) Create(c *fiber.Ctx) error {
	inventarioID := c.Params("id")
	if _, ok := loadInventarioWithAccess(c, h.invUC, inventarioID); !ok {
		return nil
	}
	var in dto.CreateEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	img, err := parseImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: "no se pudo leer la imagen"})
	}
	out, err := h.uc.Create(c.Context(), inventarioID, in, img)
	if err != nil {
		return equipoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar equipo (merge parcial, imagen opcional)
// @Tags         equipos
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id        path  string  true  "ID del inventario"
// @Param        equipoId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EquipoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/equipos/{equipoId} [put]
func (h *EquipoHandler) Update(c *fiber.Ctx) error {
	inventarioID := c.Params("id")
	if _, ok := loadInventarioWithAccess(c, h.invUC, inventarioID); !ok {
		return nil
	}
	var in dto.UpdateEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	img, err := parseImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: "no se pudo leer la imagen"})
	}
	out, err := h.uc.Update(c.Context(), inventarioID, c.Params("equipoId"), in, img)
	if err != nil {
		return equipoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar equipo
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID del inventario"
// @Param        equipoId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/equipos/{equipoId} [delete]
func (h *EquipoHandler) Delete(c *fiber.Ctx) error {
	inventarioID := c.Params("id")
	if _, ok := loadInventarioWithAccess(c, h.invUC, inventarioID); !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), inventarioID, c.Params("equipoId")); err != nil {
		return equipoError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "equipo eliminado"})
}

// parseImage extrae la imagen del multipart si viene; (nil, nil) si no hay
// archivo (petición JSON o formulario sin foto).
func parseImage(c *fiber.Ctx) (*equipment.ImageUpload, error) {
	fh, err := c.FormFile("imagen")
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &equipment.ImageUpload{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}

// equipoError traduce los errores del caso de uso a respuestas HTTP.
func equipoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSerialRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el serial es requerido"})
	case errors.Is(err, domain.ErrEstadoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido: use nuevo, usado, reparacion o danado"})
	case errors.Is(err, domain.ErrNotAnImage):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: "el archivo no es una imagen"})
	case errors.Is(err, domain.ErrImageTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMAGE_TOO_LARGE", Message: "la imagen excede el máximo de 5MB"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
