package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicefy/invoicefy-api/pkg/gst"
)

func TestValidate_GSTINValido(t *testing.T) {
	valid := []string{
		"27AAPFU0939F1ZV",
		"29AABCU9603R1ZM",
		"07AAGFF2194N1Z1",
		" 27aapfu0939f1zv ", // se normaliza antes de validar
	}
	for _, g := range valid {
		assert.NoError(t, gst.Validate(g), "GSTIN %q debería ser válido", g)
	}
}

func TestValidate_GSTINInvalido(t *testing.T) {
	invalid := map[string]string{
		"":                 "vacío",
		"27AAPFU0939F1Z":   "14 caracteres",
		"27AAPFU0939F1ZVX": "16 caracteres",
		"2XAAPFU0939F1ZV":  "código de estado no numérico",
		"27AAPFU0939F1XV":  "sin la Z fija",
		"27aapfu0939f0ZV":  "dígito de entidad cero",
	}
	for g, reason := range invalid {
		assert.Error(t, gst.Validate(g), "GSTIN %q debería fallar (%s)", g, reason)
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "27AAPFU0939F1ZV", gst.Normalize("  27aapfu0939f1zv "))
}
