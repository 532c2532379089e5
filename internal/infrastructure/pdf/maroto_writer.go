// Package pdf serializa las páginas diagramadas por el dominio a bytes PDF
// usando Maroto v2. La diagramación ya viene resuelta (qué bloque va en qué
// página y a qué altura): aquí solo se traduce bloque por bloque, con el
// salto de página automático deshabilitado para que Maroto nunca re-pagine.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/invoicefy/invoicefy-api/internal/application/billing"
	"github.com/invoicefy/invoicefy-api/internal/domain/layout"
)

// puntos PDF → milímetros (Maroto trabaja en mm).
const ptToMM = 25.4 / 72.0

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

var _ billing.DocumentWriter = (*MarotoWriter)(nil)

// MarotoWriter implementa billing.DocumentWriter usando Maroto v2.
type MarotoWriter struct {
	geo layout.Geometry
}

// NewMarotoWriter construye el writer con la geometría del documento (debe
// ser la misma con la que se diagramó).
func NewMarotoWriter(geo layout.Geometry) *MarotoWriter {
	return &MarotoWriter{geo: geo}
}

// Write serializa las páginas a un PDF A4. Respeta la paginación recibida:
// cada layout.Page se traduce a una página Maroto explícita.
func (w *MarotoWriter) Write(_ context.Context, pages []layout.Page) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(w.geo.MarginTop * ptToMM).
		WithRightMargin(w.geo.MarginTop * ptToMM).
		WithTopMargin(w.geo.MarginTop * ptToMM).
		WithBottomMargin(w.geo.MarginBottom * ptToMM).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithDisableAutoPageBreak(true).
		WithTitle("Invoicefy Invoice", true).
		Build()

	m := maroto.New(cfg)
	for _, p := range pages {
		pg := page.New()
		for _, block := range p.Blocks {
			pg.Add(blockRow(block))
		}
		m.AddPages(pg)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// blockRow traduce un bloque a una fila Maroto de la altura del bloque.
func blockRow(block layout.Block) core.Row {
	switch block.Kind {
	case layout.BlockTableHeader:
		return tableRow(block, true)
	case layout.BlockItemRow:
		return tableRow(block, false)
	default:
		return linesRow(block)
	}
}

// linesRow apila las líneas de texto del bloque, repartiendo la altura.
func linesRow(block layout.Block) core.Row {
	c := col.New(12)
	lineHeight := block.Height * ptToMM / float64(len(block.Lines))
	for i, line := range block.Lines {
		style := fontstyle.Normal
		size := 10.0
		if line.Emphasis {
			style = fontstyle.Bold
			size = 13.0
		}
		c.Add(text.New(line.Text, props.Text{
			Top:   float64(i) * lineHeight,
			Size:  size,
			Style: style,
		}))
	}
	return row.New(block.Height * ptToMM).Add(c)
}

// Anchos de columna de la tabla (grilla de 12 de Maroto):
// Description 6, Qty 2, Unit Price 2, Line Total 2.
var tableWidths = [4]int{6, 2, 2, 2}

// tableRow traduce un bloque tabular (encabezado o línea de detalle).
func tableRow(block layout.Block, header bool) core.Row {
	r := row.New(block.Height * ptToMM)
	for i, cell := range block.Cells {
		textProps := props.Text{Size: 9, Top: 1}
		if header {
			textProps.Style = fontstyle.Bold
			textProps.Color = colorGray
		}
		if i > 0 {
			// cantidades y montos alineados a la derecha
			textProps.Align = align.Right
		}
		r.Add(col.New(tableWidths[i]).Add(text.New(cell, textProps)))
	}
	return r
}
