package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

var _ repository.EmailRepository = (*EmailRepo)(nil)

const emailColunas = `id, endereco, tipo, vinculo_tipo, vinculo_id, vinculo_patrimonio, usuario,
	senha, recuperacao, observacoes, status, criado_em, atualizado_em`

// EmailRepo implementação do porto EmailRepository sobre PostgreSQL (pool ou tx).
type EmailRepo struct {
	q Querier
}

// NewEmailRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmailRepository(q Querier) *EmailRepo {
	return &EmailRepo{q: q}
}

// Create persiste uma nova conta de e-mail.
func (r *EmailRepo) Create(ctx context.Context, e *entity.Email) error {
	query := `
		INSERT INTO emails (` + emailColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Endereco, e.Tipo, e.Vinculo.Tipo, e.Vinculo.ID, e.Vinculo.Patrimonio, e.Usuario,
		e.Senha, e.Recuperacao, e.Observacoes, e.Status, e.CriadoEm, e.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert email: %w", err)
	}
	return nil
}

func (r *EmailRepo) scanRow(row pgx.Row) (*entity.Email, error) {
	var e entity.Email
	err := row.Scan(
		&e.ID, &e.Endereco, &e.Tipo, &e.Vinculo.Tipo, &e.Vinculo.ID, &e.Vinculo.Patrimonio, &e.Usuario,
		&e.Senha, &e.Recuperacao, &e.Observacoes, &e.Status, &e.CriadoEm, &e.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan email: %w", err)
	}
	return &e, nil
}

// GetByID obtém uma conta por ID. Retorna (nil, nil) se não existe.
func (r *EmailRepo) GetByID(ctx context.Context, id string) (*entity.Email, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+emailColunas+` FROM emails WHERE id = $1`, id))
}

// GetByEnderecoTipo obtém uma conta pela chave natural (endereço, provedor). Retorna (nil, nil) se não existe.
func (r *EmailRepo) GetByEnderecoTipo(ctx context.Context, endereco, tipo string) (*entity.Email, error) {
	return r.scanRow(r.q.QueryRow(ctx,
		`SELECT `+emailColunas+` FROM emails WHERE endereco = $1 AND tipo = $2`, endereco, tipo))
}

// Update atualiza uma conta existente.
func (r *EmailRepo) Update(ctx context.Context, e *entity.Email) error {
	query := `
		UPDATE emails SET endereco = $2, tipo = $3, vinculo_tipo = $4, vinculo_id = $5,
			vinculo_patrimonio = $6, usuario = $7, senha = $8, recuperacao = $9,
			observacoes = $10, status = $11, atualizado_em = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Endereco, e.Tipo, e.Vinculo.Tipo, e.Vinculo.ID,
		e.Vinculo.Patrimonio, e.Usuario, e.Senha, e.Recuperacao,
		e.Observacoes, e.Status, e.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update email: %w", err)
	}
	return nil
}

// List lista contas de e-mail; Inativas ficam fora salvo IncluirInativos.
func (r *EmailRepo) List(ctx context.Context, filtro repository.FiltroEmail) ([]*entity.Email, error) {
	query := `SELECT ` + emailColunas + ` FROM emails WHERE 1=1`
	var args []any
	if !filtro.IncluirInativos {
		query += ` AND status <> 'Inativo'`
	}
	if filtro.VinculoID != "" {
		args = append(args, filtro.VinculoID)
		query += fmt.Sprintf(` AND vinculo_id = $%d`, len(args))
	}
	if filtro.Tipo != "" {
		args = append(args, filtro.Tipo)
		query += fmt.Sprintf(` AND tipo = $%d`, len(args))
	}
	query += ` ORDER BY endereco, tipo`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	defer rows.Close()
	var list []*entity.Email
	for rows.Next() {
		var e entity.Email
		if err := rows.Scan(
			&e.ID, &e.Endereco, &e.Tipo, &e.Vinculo.Tipo, &e.Vinculo.ID, &e.Vinculo.Patrimonio, &e.Usuario,
			&e.Senha, &e.Recuperacao, &e.Observacoes, &e.Status, &e.CriadoEm, &e.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete remove fisicamente uma conta por ID.
func (r *EmailRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM emails WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete email: %w", err)
	}
	return nil
}
