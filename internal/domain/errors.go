package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrGSTAlreadyExists   = errors.New("el número GST ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
)

// FieldError describe un error de validación atado a un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa errores de validación por campo para que la capa
// HTTP pueda presentar mensajes por campo sin re-validar.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye un ValidationError con un único campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add agrega un error de campo (para validaciones acumulativas).
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors indica si se acumuló al menos un error de campo.
func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap retorna ErrInvalidInput para que los handlers clasifiquen con
// errors.Is sin conocer el tipo concreto.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// RenderError indica que un invariante se violó al momento de armar el
// documento (falla del servidor, no corregible por el usuario).
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string { return "render: " + e.Reason }
