package repository

import "github.com/invoicefy/invoicefy-api/internal/domain/entity"

// BusinessRepository define el puerto de persistencia para Business (DIP).
// La implementación vive en infrastructure. Ausente = (nil, nil).
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	GetByGSTNumber(gst string) (*entity.Business, error)
	Update(business *entity.Business) error
}
