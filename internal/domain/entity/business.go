package entity

import "time"

// Business representa una empresa/tenant del sistema (multi-tenant, enfoque India).
// El número GST es único a nivel global y no cambia después del registro.
type Business struct {
	ID        string
	Name      string
	GSTNumber string // GSTIN indio (15 caracteres, validado en pkg/gst)
	Address   string
	LogoURL   string // opcional; vacío = sin logo
	CreatedAt time.Time
	UpdatedAt time.Time
}
