// Package pdf implementa la generación del acta de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Localidad  │  Período (mes/año) + Fecha creación   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  META: Creado por / Estado / Total de equipos                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Serial | Tipo | Estado | Observaciones | Foto    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteo por estado + TOTAL                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/invenmovil/inventario-api/internal/application/report"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var nombresMes = []string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.InventarioPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ report.InventarioPDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateInventarioPDF genera el acta y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventarioPDF(
	_ context.Context,
	inv *entity.Inventario,
	equipos []*entity.Equipo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metaRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(equipos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range resumenRows(equipos) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: localidad (izq) y período + fecha de creación (der).
func headerRow(inv *entity.Inventario) core.Row {
	periodo := fmt.Sprintf("%s %d", mesLabel(inv.Mes), inv.Anio)
	creado := inv.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("ACTA DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Localidad, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Creado: "+creado, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// metaRow: responsable, estado y total de equipos.
func metaRow(inv *entity.Inventario) core.Row {
	responsable := inv.CreatedByName
	if responsable == "" {
		responsable = inv.CreatedBy
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Responsable: %s   |   Estado: %s   |   Equipos registrados: %d",
				responsable, inv.Estado, inv.TotalEquipos,
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de equipos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Serial", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Estado", 2, align.Center),
		h("Observaciones", 3, align.Left),
		h("Foto", 1, align.Center),
	)
}

// tableDetailRows: una fila por equipo.
func tableDetailRows(equipos []*entity.Equipo) []core.Row {
	result := make([]core.Row, 0, len(equipos))
	for i, eq := range equipos {
		foto := "No"
		if eq.ImagenURL != "" {
			foto = "Sí"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				eq.Serial,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(eq.Tipo, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				eq.Estado,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(eq.Observaciones, "—"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				foto,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// resumenRows: conteo de equipos por estado y total general.
func resumenRows(equipos []*entity.Equipo) []core.Row {
	counts := map[string]int{}
	for _, eq := range equipos {
		counts[eq.Estado]++
	}

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, estado := range []string{entity.EstadoNuevo, entity.EstadoUsado, entity.EstadoReparacion, entity.EstadoDanado} {
		if counts[estado] == 0 {
			continue
		}
		rows = append(rows, row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(estado+":", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", counts[estado]), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			})),
		))
	}
	rows = append(rows, row.New(7).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", len(equipos)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// mesLabel convierte un mes numérico ("1", "01") a su nombre; si el valor
// ya viene como texto ("Enero") se devuelve tal cual.
func mesLabel(mes string) string {
	if n, err := strconv.Atoi(mes); err == nil && n >= 1 && n <= 12 {
		return nombresMes[n]
	}
	return mes
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
