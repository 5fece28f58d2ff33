package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/invenmovil/inventario-api/internal/application/dto"
	"github.com/invenmovil/inventario-api/internal/application/report"
	"github.com/invenmovil/inventario-api/internal/domain"
)

// ReporteHandler genera el acta PDF de un inventario (solo admin).
type ReporteHandler struct {
	uc *report.ReportUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *report.ReportUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar acta de inventario en PDF (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del inventario"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/inventarios/{id}/reporte [get]
func (h *ReporteHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, filename, err := h.uc.DownloadInventarioPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
