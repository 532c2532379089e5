package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicefy/invoicefy-api/internal/application/auth"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

var _ auth.RegistrationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistration inicia una transacción, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback. Se usa en el registro: empresa y usuario
// propietario nacen juntos o no nace ninguno.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	businessRepo repository.BusinessRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBusinessRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
