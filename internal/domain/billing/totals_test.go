package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/billing"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestCompute_VectorExacto valida el vector de referencia del cálculo:
//
//	items    = [{qty:2, price:50}, {qty:1, price:25}]
//	descuento = 10%, impuesto = 5%
//	subtotal  = 125.00
//	descuento = 12.50
//	gravable  = 112.50
//	impuesto  = 112.50 × 0.05 = 5.625 → 5.63 (mitad lejos de cero)
//	total     = 112.50 + 5.625 = 118.125 → 118.13
//
// Si alguien cambia el orden descuento-antes-de-impuesto o mueve el redondeo
// a un paso intermedio, este test falla de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func item(desc string, qty, price int64) entity.LineItem {
	return entity.LineItem{
		Description: desc,
		Quantity:    decimal.NewFromInt(qty),
		UnitPrice:   decimal.NewFromInt(price),
	}
}

func TestCompute_VectorExacto(t *testing.T) {
	items := []entity.LineItem{
		item("Diseño de logo", 2, 50),
		item("Hosting mensual", 1, 25),
	}

	totals, err := billing.Compute(items, decimal.NewFromInt(5), decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("125")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.DiscountAmount.Equal(decimal.RequireFromString("12.5")), "descuento = %s", totals.DiscountAmount)
	assert.True(t, totals.TaxAmount.Equal(decimal.RequireFromString("5.63")), "impuesto = %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("118.13")), "total = %s", totals.Total)
}

// TestCompute_Determinista verifica que dos llamadas con el mismo input
// producen exactamente las mismas cifras (función pura, idempotente).
func TestCompute_Determinista(t *testing.T) {
	items := []entity.LineItem{item("Consultoría", 3, 1200)}
	tax := decimal.RequireFromString("18")
	discount := decimal.RequireFromString("12.5")

	t1, err1 := billing.Compute(items, tax, discount)
	t2, err2 := billing.Compute(items, tax, discount)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, t1.Subtotal.Equal(t2.Subtotal))
	assert.True(t, t1.DiscountAmount.Equal(t2.DiscountAmount))
	assert.True(t, t1.TaxAmount.Equal(t2.TaxAmount))
	assert.True(t, t1.Total.Equal(t2.Total))
}

// TestCompute_SinTasas: con descuento y tasa cero, total == subtotal exacto.
func TestCompute_SinTasas(t *testing.T) {
	items := []entity.LineItem{item("Servicio", 4, 250)}

	totals, err := billing.Compute(items, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, totals.Total.Equal(totals.Subtotal))
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
}

// TestCompute_DescuentoTotal: descuento 100% anula gravable, impuesto y total.
func TestCompute_DescuentoTotal(t *testing.T) {
	items := []entity.LineItem{item("Servicio", 1, 999)}

	totals, err := billing.Compute(items, decimal.NewFromInt(18), hundredPct())
	require.NoError(t, err)
	assert.True(t, totals.TaxAmount.IsZero(), "impuesto sobre gravable cero debe ser cero")
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(999)), "el subtotal no se descuenta")
}

// TestCompute_InvarianteSuma: para entradas variadas se cumple
// total = subtotal − descuento + impuesto sobre las cifras redondeadas
// (tasas enteras y precios con 2 decimales no generan residuo de redondeo).
func TestCompute_InvarianteSuma(t *testing.T) {
	cases := []struct {
		name          string
		items         []entity.LineItem
		tax, discount string
	}{
		{"sin tasas", []entity.LineItem{item("A", 2, 10), item("B", 5, 3)}, "0", "0"},
		{"solo impuesto", []entity.LineItem{item("A", 1, 100)}, "18", "0"},
		{"solo descuento", []entity.LineItem{item("A", 7, 41)}, "0", "25"},
		{"ambos", []entity.LineItem{item("A", 2, 50), item("B", 1, 25)}, "5", "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals, err := billing.Compute(tc.items, decimal.RequireFromString(tc.tax), decimal.RequireFromString(tc.discount))
			require.NoError(t, err)
			got := totals.Subtotal.Sub(totals.DiscountAmount).Add(totals.TaxAmount)
			assert.True(t, totals.Total.Equal(got),
				"total %s ≠ subtotal−descuento+impuesto %s", totals.Total, got)
		})
	}
}

// ── Errores de validación ─────────────────────────────────────────────────────

func TestCompute_ErrorSinItems(t *testing.T) {
	_, err := billing.Compute(nil, decimal.Zero, decimal.Zero)
	requireFieldError(t, err, "items")
}

func TestCompute_ErrorCantidadCero(t *testing.T) {
	items := []entity.LineItem{item("A", 0, 10)}
	_, err := billing.Compute(items, decimal.Zero, decimal.Zero)
	requireFieldError(t, err, "items[0].quantity")
}

func TestCompute_ErrorPrecioNegativo(t *testing.T) {
	items := []entity.LineItem{{
		Description: "A",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.NewFromInt(-5),
	}}
	_, err := billing.Compute(items, decimal.Zero, decimal.Zero)
	requireFieldError(t, err, "items[0].unitPrice")
}

func TestCompute_ErrorDescripcionVacia(t *testing.T) {
	items := []entity.LineItem{item("", 1, 10)}
	_, err := billing.Compute(items, decimal.Zero, decimal.Zero)
	requireFieldError(t, err, "items[0].description")
}

func TestCompute_ErrorTasasFueraDeRango(t *testing.T) {
	items := []entity.LineItem{item("A", 1, 10)}

	_, err := billing.Compute(items, decimal.NewFromInt(101), decimal.Zero)
	requireFieldError(t, err, "taxRate")

	_, err = billing.Compute(items, decimal.Zero, decimal.NewFromInt(-1))
	requireFieldError(t, err, "discountRate")
}

// TestCompute_AcumulaErrores verifica que la validación reporta todos los
// campos ofensores en una sola pasada, no solo el primero.
func TestCompute_AcumulaErrores(t *testing.T) {
	items := []entity.LineItem{item("", 0, 10)}
	_, err := billing.Compute(items, decimal.NewFromInt(200), decimal.Zero)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func hundredPct() decimal.Decimal { return decimal.NewFromInt(100) }

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr, "se esperaba ValidationError")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	for _, f := range verr.Fields {
		if f.Field == field {
			return
		}
	}
	t.Fatalf("no se encontró error para el campo %q en %v", field, verr.Fields)
}
