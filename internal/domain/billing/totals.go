// Package billing contiene el cálculo financiero puro de facturas: totales a
// partir de líneas, descuento porcentual y tasa de impuesto.
//
// El orden del algoritmo es contractual y no debe cambiarse:
//
//	subtotal   = Σ (cantidad_i × precioUnitario_i)
//	descuento  = subtotal × tasaDescuento / 100
//	gravable   = subtotal − descuento
//	impuesto   = gravable × tasaImpuesto / 100
//	total      = gravable + impuesto
//
// La aritmética intermedia se hace con precisión completa (shopspring/decimal)
// y el redondeo a 2 decimales (mitad lejos de cero) se aplica únicamente a las
// cifras de salida, para no acumular error de redondeo entre pasos.
package billing

import (
	"fmt"

	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals agrupa las cifras derivadas de una factura, ya redondeadas a 2
// decimales. Invariante: Total = Subtotal − DiscountAmount + TaxAmount
// (salvo el redondeo final de cada cifra).
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Compute calcula los totales de una factura. Es una función pura: sin
// efectos, determinista e idempotente para entradas idénticas.
// Retorna *domain.ValidationError con el campo ofensor si alguna precondición
// no se cumple (lista vacía, cantidad ≤ 0, precio < 0, tasa fuera de [0,100]).
func Compute(items []entity.LineItem, taxRatePercent, discountRatePercent decimal.Decimal) (Totals, error) {
	if err := Validate(items, taxRatePercent, discountRatePercent); err != nil {
		return Totals{}, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	discountAmount := subtotal.Mul(discountRatePercent).Div(hundred)
	taxable := subtotal.Sub(discountAmount)
	taxAmount := taxable.Mul(taxRatePercent).Div(hundred)
	total := taxable.Add(taxAmount)

	// Redondeo solo en la salida. decimal.Round usa mitad-lejos-de-cero.
	return Totals{
		Subtotal:       subtotal.Round(2),
		DiscountAmount: discountAmount.Round(2),
		TaxAmount:      taxAmount.Round(2),
		Total:          total.Round(2),
	}, nil
}

// Validate verifica las precondiciones del cálculo y acumula todos los
// errores de campo (no se detiene en el primero), de modo que la capa de
// peticiones pueda mostrar mensajes por campo de una sola pasada.
func Validate(items []entity.LineItem, taxRatePercent, discountRatePercent decimal.Decimal) error {
	verr := &domain.ValidationError{}

	if len(items) == 0 {
		verr.Add("items", "la factura debe tener al menos una línea")
	}
	for i, item := range items {
		if item.Description == "" {
			verr.Add(fmt.Sprintf("items[%d].description", i), "la descripción no puede estar vacía")
		}
		if !item.Quantity.IsPositive() {
			verr.Add(fmt.Sprintf("items[%d].quantity", i), "la cantidad debe ser mayor que cero")
		}
		if item.UnitPrice.IsNegative() {
			verr.Add(fmt.Sprintf("items[%d].unitPrice", i), "el precio unitario no puede ser negativo")
		}
	}
	if !inPercentRange(taxRatePercent) {
		verr.Add("taxRate", "la tasa de impuesto debe estar entre 0 y 100")
	}
	if !inPercentRange(discountRatePercent) {
		verr.Add("discountRate", "la tasa de descuento debe estar entre 0 y 100")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func inPercentRange(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(hundred)
}
