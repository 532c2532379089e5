// Package gst valida el formato del GSTIN indio (Goods and Services Tax
// Identification Number): 15 caracteres compuestos por código de estado (2
// dígitos), PAN (10 caracteres alfanuméricos), dígito de entidad, la letra
// fija Z y un carácter de control.
package gst

import (
	"fmt"
	"regexp"
	"strings"
)

// gstinPattern: 2 dígitos + 5 letras + 4 dígitos + 1 letra + 1 dígito de
// entidad + 'Z' + 1 carácter de control. Ej: 27AAPFU0939F1ZV.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// Normalize limpia espacios y lleva a mayúsculas (forma canónica para
// almacenar y comparar unicidad).
func Normalize(gstin string) string {
	return strings.ToUpper(strings.TrimSpace(gstin))
}

// Validate verifica el formato del GSTIN (sobre la forma normalizada).
// No consulta el registro GST: solo valida estructura.
func Validate(gstin string) error {
	normalized := Normalize(gstin)
	if normalized == "" {
		return fmt.Errorf("gst: GSTIN vacío")
	}
	if len(normalized) != 15 {
		return fmt.Errorf("gst: GSTIN debe tener 15 caracteres, se recibieron %d", len(normalized))
	}
	if !gstinPattern.MatchString(normalized) {
		return fmt.Errorf("gst: formato de GSTIN inválido (ej. válido: 27AAPFU0939F1ZV)")
	}
	return nil
}
