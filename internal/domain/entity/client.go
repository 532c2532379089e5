package entity

import "time"

// Client representa un cliente facturado por una empresa.
// BusinessID es inmutable después de la creación: un cliente pertenece a una
// única empresa y solo puede ser referenciado por facturas de esa empresa.
type Client struct {
	ID         string
	BusinessID string
	Name       string
	Email      string
	Phone      string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
