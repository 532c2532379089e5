package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura. No hay ciclo estricto: el operador puede
// corregir el estado libremente entre los tres valores.
const (
	StatusUnpaid  = "Unpaid" // estado inicial al crear
	StatusPaid    = "Paid"
	StatusOverdue = "Overdue"
)

// ValidStatus indica si s es uno de los tres estados permitidos.
func ValidStatus(s string) bool {
	return s == StatusUnpaid || s == StatusPaid || s == StatusOverdue
}

// LineItem es una línea de la factura. No es una entidad persistida aparte:
// las líneas viven embebidas en la factura (JSONB) y su orden de inserción
// es significativo para el documento impreso.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal retorna cantidad × precio unitario, sin redondear.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// Invoice representa una factura. Los totales almacenados (Subtotal,
// TaxAmount, Total) se calculan una sola vez al crear y son función pura de
// las líneas y las tasas; después de la creación solo Status es mutable.
type Invoice struct {
	ID           string
	BusinessID   string
	ClientID     string
	Number       string // único y global, generado al crear, inmutable
	Items        []LineItem
	DiscountRate decimal.Decimal // porcentaje 0–100 sobre el subtotal
	TaxRate      decimal.Decimal // porcentaje 0–100 sobre el subtotal descontado
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	Total        decimal.Decimal
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
