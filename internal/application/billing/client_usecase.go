package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invoicefy/invoicefy-api/internal/application/dto"
	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes de la empresa.
type ClientUseCase struct {
	guard *OwnershipGuard
	repo  repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(guard *OwnershipGuard, repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{guard: guard, repo: repo}
}

// Create crea un cliente de la empresa. BusinessID se fija aquí y nunca cambia.
func (uc *ClientUseCase) Create(_ context.Context, businessID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "el nombre del cliente es obligatorio")
	}
	now := time.Now()
	client := &entity.Client{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get obtiene un cliente de la empresa (pasa por el guard).
func (uc *ClientUseCase) Get(ctx context.Context, businessID, clientID string) (*dto.ClientResponse, error) {
	client, err := uc.guard.Client(ctx, businessID, clientID)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes de la empresa con paginación.
func (uc *ClientUseCase) List(_ context.Context, businessID string, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByBusiness(businessID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de contacto de un cliente de la empresa.
func (uc *ClientUseCase) Update(ctx context.Context, businessID, clientID string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.guard.Client(ctx, businessID, clientID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "el nombre del cliente es obligatorio")
	}
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.Address = in.Address
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente de la empresa.
func (uc *ClientUseCase) Delete(ctx context.Context, businessID, clientID string) error {
	if _, err := uc.guard.Client(ctx, businessID, clientID); err != nil {
		return err
	}
	return uc.repo.Delete(clientID)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}
