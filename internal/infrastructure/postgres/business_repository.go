package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación de BusinessRepository (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *BusinessRepo) Create(business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, name, gst_number, address, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.GSTNumber, business.Address,
		nullIfEmpty(business.LogoURL), business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrGSTAlreadyExists
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	query := `
		SELECT id, name, gst_number, address, COALESCE(logo_url, ''), created_at, updated_at
		FROM businesses WHERE id = $1`
	var b entity.Business
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Name, &b.GSTNumber, &b.Address, &b.LogoURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// GetByGSTNumber obtiene una empresa por su GSTIN (único a nivel global).
func (r *BusinessRepo) GetByGSTNumber(gst string) (*entity.Business, error) {
	query := `
		SELECT id, name, gst_number, address, COALESCE(logo_url, ''), created_at, updated_at
		FROM businesses WHERE gst_number = $1`
	var b entity.Business
	err := r.q.QueryRow(context.Background(), query, gst).Scan(
		&b.ID, &b.Name, &b.GSTNumber, &b.Address, &b.LogoURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by gst: %w", err)
	}
	return &b, nil
}

// Update actualiza el perfil de la empresa. El GSTIN no se toca: es inmutable
// después del registro.
func (r *BusinessRepo) Update(business *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, address = $3, logo_url = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.Address,
		nullIfEmpty(business.LogoURL), business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}
