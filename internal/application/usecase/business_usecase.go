package usecase

import (
	"context"
	"time"

	"github.com/invoicefy/invoicefy-api/internal/application/dto"
	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

// BusinessUseCase perfil de la empresa: consulta y actualización.
// La empresa nunca se elimina desde aquí y su GSTIN es inmutable.
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// GetProfile retorna el perfil de la empresa autenticada.
func (uc *BusinessUseCase) GetProfile(_ context.Context, businessID string) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return toBusinessResponse(business), nil
}

// UpdateProfile actualiza nombre, dirección y logo de la empresa autenticada.
// El businessID sale del token, nunca del body: una empresa solo puede
// mutar su propio perfil.
func (uc *BusinessUseCase) UpdateProfile(_ context.Context, businessID string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "el nombre de la empresa es obligatorio")
	}
	business.Name = in.Name
	business.Address = in.Address
	business.LogoURL = in.LogoURL
	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		GSTNumber: b.GSTNumber,
		Address:   b.Address,
		LogoURL:   b.LogoURL,
		CreatedAt: b.CreatedAt,
	}
}
