package layout

import (
	"fmt"

	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Renderer diagrama facturas sobre una geometría fija. Es puro y sin estado
// mutable: renderizar dos veces la misma factura produce páginas idénticas.
type Renderer struct {
	geo Geometry
}

// NewRenderer construye el renderer con la geometría dada.
func NewRenderer(geo Geometry) *Renderer {
	return &Renderer{geo: geo}
}

// Render diagrama la factura como secuencia finita de páginas.
//
// Reglas de paginación: se mantiene un cursor vertical por página; si la
// siguiente fila de línea no cabe antes de MaxContentY, se cierra la página y
// se continúa en la siguiente desde el margen superior, sin repetir header ni
// cabecera de tabla. El bloque de resumen va después de la última fila,
// extendiendo la paginación si es necesario.
//
// Retorna *domain.RenderError si la factura no tiene líneas o el cliente es
// nil: los invariantes del modelo deberían impedirlo, pero el renderer se
// defiende en lugar de producir un documento corrupto.
func (r *Renderer) Render(inv *entity.Invoice, business *entity.Business, client *entity.Client) ([]Page, error) {
	if inv == nil {
		return nil, &domain.RenderError{Reason: "factura nil"}
	}
	if len(inv.Items) == 0 {
		return nil, &domain.RenderError{Reason: "la factura no tiene líneas"}
	}
	if client == nil {
		return nil, &domain.RenderError{Reason: fmt.Sprintf("cliente ausente para la factura %s", inv.Number)}
	}

	d := &document{geo: r.geo}
	d.newPage()

	// Bandas de cabecera: solo en la primera página.
	d.place(r.headerBlock(inv, business))
	d.place(r.billToBlock(client))
	d.place(r.tableHeaderBlock())

	for _, item := range inv.Items {
		d.placeBreaking(r.itemRowBlock(item))
	}
	d.placeBreaking(r.summaryBlock(inv))

	return d.pages, nil
}

// ── construcción de bloques ───────────────────────────────────────────────────

func (r *Renderer) headerBlock(inv *entity.Invoice, business *entity.Business) Block {
	issuer := "N/A"
	if business != nil && business.Name != "" {
		issuer = business.Name
	}
	return Block{
		Kind:   BlockHeader,
		Height: r.geo.HeaderHeight,
		Lines: []Line{
			{Text: "Invoicefy Invoice", Emphasis: true},
			{Text: "Invoice Number: " + inv.Number},
			{Text: "Invoice Date: " + inv.CreatedAt.Format("02 Jan 2006")},
			{Text: "Status: " + inv.Status},
			{Text: "Issued By: " + issuer},
		},
	}
}

func (r *Renderer) billToBlock(client *entity.Client) Block {
	return Block{
		Kind:   BlockBillTo,
		Height: r.geo.BillToHeight,
		Lines: []Line{
			{Text: "Bill To: " + orNA(client.Name)},
			{Text: "Address: " + orNA(client.Address)},
			{Text: "Email: " + orNA(client.Email)},
			{Text: "Phone: " + orNA(client.Phone)},
		},
	}
}

func (r *Renderer) tableHeaderBlock() Block {
	return Block{
		Kind:   BlockTableHeader,
		Height: r.geo.TableHeaderHeight,
		Cells:  []string{"Description", "Qty", "Unit Price", "Line Total"},
	}
}

// itemRowBlock arma la fila de una línea. El total de línea se recalcula aquí
// para display con la misma aritmética decimal del cálculo de totales
// (entity.LineItem.LineTotal), de modo que ambos caminos no puedan divergir.
func (r *Renderer) itemRowBlock(item entity.LineItem) Block {
	return Block{
		Kind:   BlockItemRow,
		Height: r.geo.RowHeight,
		Cells: []string{
			item.Description,
			item.Quantity.String(),
			money(item.UnitPrice),
			money(item.LineTotal().Round(2)),
		},
	}
}

// summaryBlock arma el resumen final: subtotal siempre; las líneas de
// descuento e impuesto solo si su tasa es > 0 (mostrando porcentaje y monto);
// el total siempre de último y enfatizado.
func (r *Renderer) summaryBlock(inv *entity.Invoice) Block {
	lines := []Line{
		{Text: "Subtotal: " + money(inv.Subtotal)},
	}
	if inv.DiscountRate.IsPositive() {
		discountAmount := inv.Subtotal.Mul(inv.DiscountRate).Div(hundred).Round(2)
		lines = append(lines, Line{
			Text: fmt.Sprintf("Discount (%s): -%s", percent(inv.DiscountRate), money(discountAmount)),
		})
	}
	if inv.TaxRate.IsPositive() {
		lines = append(lines, Line{
			Text: fmt.Sprintf("Tax (%s): %s", percent(inv.TaxRate), money(inv.TaxAmount)),
		})
	}
	lines = append(lines, Line{Text: "Total: " + money(inv.Total), Emphasis: true})

	return Block{
		Kind:   BlockSummary,
		Height: float64(len(lines))*r.geo.SummaryLineHeight + r.geo.SummaryPadding,
		Lines:  lines,
	}
}

// ── cursor de paginación ──────────────────────────────────────────────────────

type document struct {
	geo     Geometry
	pages   []Page
	cursorY float64
}

func (d *document) newPage() {
	d.pages = append(d.pages, Page{Number: len(d.pages) + 1})
	d.cursorY = d.geo.MarginTop
}

// place coloca el bloque en el cursor actual sin considerar salto de página
// (las bandas de la primera página se asumen dentro del lienzo).
func (d *document) place(b Block) {
	b.Y = d.cursorY
	p := &d.pages[len(d.pages)-1]
	p.Blocks = append(p.Blocks, b)
	d.cursorY += b.Height
}

// placeBreaking cierra la página y abre otra si el bloque no cabe antes del
// offset máximo de contenido.
func (d *document) placeBreaking(b Block) {
	if d.cursorY+b.Height > d.geo.MaxContentY() {
		d.newPage()
	}
	d.place(b)
}

// ── formato numérico ──────────────────────────────────────────────────────────

var hundred = decimal.NewFromInt(100)

// money formatea un monto con exactamente 2 decimales, símbolo ₹ y
// agrupación india de miles.
func money(d decimal.Decimal) string {
	return "₹" + FormatINR(d.StringFixed(2))
}

// percent formatea una tasa con hasta 1 decimal, sin decimal cuando el
// porcentaje es entero. La misma regla aplica a descuento e impuesto.
func percent(rate decimal.Decimal) string {
	rounded := rate.Round(1)
	if rounded.IsInteger() {
		return rounded.StringFixed(0) + "%"
	}
	return rounded.StringFixed(1) + "%"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
