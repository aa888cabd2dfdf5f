package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com o Store atado à tx e faz Commit
// ou Rollback. Entidade e auditoria entram (ou caem) juntas.
func (r *TxRunner) Run(ctx context.Context, fn func(usecase.Store) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	store := usecase.Store{
		Ativos:    NewAtivoRepository(tx),
		Celulares: NewCelularRepository(tx),
		Softwares: NewSoftwareRepository(tx),
		Emails:    NewEmailRepository(tx),
		Filiais:   NewFilialRepository(tx),
		Usuarios:  NewUsuarioRepository(tx),
		Logs:      NewAuditLogRepository(tx),
	}

	if err := fn(store); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
