// Package layout implementa la diagramación paginada de una factura como
// documento imprimible. Produce una descripción declarativa de páginas y
// bloques con posiciones verticales; la serialización a un formato de bytes
// concreto (PDF) es responsabilidad de un adaptador de salida aparte.
//
// Estructura vertical del documento:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: título, número, fecha, estado,     │  solo página 1
//	│          nombre de la empresa emisora       │
//	│  BILL TO: nombre, dirección, email, tel     │  solo página 1
//	│  TABLE HEADER: Description|Qty|Unit|Total   │  solo página 1
//	│  ITEM ROW × n  (continúan en páginas        │
//	│                 siguientes sin repetir nada) │
//	│  SUMMARY: subtotal / descuento? / impuesto? │  después de la última línea,
//	│           / TOTAL                           │  extendiendo paginación si hace falta
//	└─────────────────────────────────────────────┘
package layout

import "strings"

// Tipos de bloque dentro de una página.
const (
	BlockHeader      = "header"
	BlockBillTo      = "bill_to"
	BlockTableHeader = "table_header"
	BlockItemRow     = "item_row"
	BlockSummary     = "summary"
)

// Line es una línea de texto dentro de un bloque. Emphasis marca las líneas
// que el adaptador debe resaltar (título y total a pagar).
type Line struct {
	Text     string
	Emphasis bool
}

// Block es un bloque posicionado verticalmente dentro de una página.
// Los bloques de tabla (table_header e item_row) usan Cells; el resto, Lines.
type Block struct {
	Kind   string
	Y      float64 // offset superior del bloque dentro de la página, en puntos
	Height float64
	Lines  []Line
	Cells  []string // Description, Qty, Unit Price, Line Total
}

// Page es una página diagramada, numerada desde 1.
type Page struct {
	Number int
	Blocks []Block
}

// Geometry define el lienzo fijo y las alturas de banda, en puntos PDF.
// Los valores por defecto corresponden a A4 con márgenes de 40 puntos.
type Geometry struct {
	PageWidth         float64
	PageHeight        float64
	MarginTop         float64
	MarginBottom      float64
	HeaderHeight      float64
	BillToHeight      float64
	TableHeaderHeight float64
	RowHeight         float64
	SummaryLineHeight float64
	SummaryPadding    float64
}

// DefaultGeometry retorna la geometría A4 estándar del documento.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:         595.28,
		PageHeight:        841.89,
		MarginTop:         40,
		MarginBottom:      40,
		HeaderHeight:      104,
		BillToHeight:      88,
		TableHeaderHeight: 24,
		RowHeight:         20,
		SummaryLineHeight: 18,
		SummaryPadding:    12,
	}
}

// MaxContentY es el offset vertical máximo utilizable: un bloque cuyo borde
// inferior lo supere debe ir en la página siguiente.
func (g Geometry) MaxContentY() float64 {
	return g.PageHeight - g.MarginBottom
}

// FormatINR formatea un monto decimal en string (salida de StringFixed(2))
// con agrupación de dígitos india: los últimos tres dígitos enteros forman un
// grupo y el resto se agrupa de a dos. Ej: "1234567.89" → "12,34,567.89".
func FormatINR(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	n := len(intPart)
	if n > 3 {
		head := intPart[:n-3]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(groups, ",") + "," + intPart[n-3:]
	}
	if hasFrac {
		return sign + intPart + "." + fracPart
	}
	return sign + intPart
}
