package report

import (
	"context"
	"fmt"

	"github.com/invenmovil/inventario-api/internal/domain"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
	"github.com/invenmovil/inventario-api/internal/domain/repository"
)

// InventarioPDFGenerator genera el acta de inventario en PDF.
type InventarioPDFGenerator interface {
	GenerateInventarioPDF(ctx context.Context, inv *entity.Inventario, equipos []*entity.Equipo) ([]byte, error)
}

// ReportUseCase genera el acta (PDF) de un inventario con su listado de equipos.
type ReportUseCase struct {
	invRepo    repository.InventarioRepository
	equipoRepo repository.EquipoRepository
	generator  InventarioPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(
	invRepo repository.InventarioRepository,
	equipoRepo repository.EquipoRepository,
	generator InventarioPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{invRepo: invRepo, equipoRepo: equipoRepo, generator: generator}
}

// DownloadInventarioPDF carga el inventario y sus equipos y genera el acta.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el inventario no existe.
func (uc *ReportUseCase) DownloadInventarioPDF(ctx context.Context, inventarioID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invRepo.GetByID(inventarioID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener inventario: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	equipos, err := uc.equipoRepo.ListByInventario(inventarioID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener equipos: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInventarioPDF(ctx, inv, equipos)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("inventario_%s_%s_%d.pdf", inv.Localidad, inv.Mes, inv.Anio)
	return pdfBytes, filename, nil
}
