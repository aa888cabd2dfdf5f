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

var _ repository.FilialRepository = (*FilialRepo)(nil)

const filialColunas = `id, nome, tipo, endereco, cidade, estado, telefone, ativo, criado_em, atualizado_em`

// FilialRepo implementação do porto FilialRepository sobre PostgreSQL (pool ou tx).
type FilialRepo struct {
	q Querier
}

// NewFilialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFilialRepository(q Querier) *FilialRepo {
	return &FilialRepo{q: q}
}

// Create persiste uma nova filial.
func (r *FilialRepo) Create(ctx context.Context, f *entity.Filial) error {
	query := `
		INSERT INTO filiais (` + filialColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Nome, f.Tipo, f.Endereco, f.Cidade, f.Estado, f.Telefone, f.Ativo, f.CriadoEm, f.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert filial: %w", err)
	}
	return nil
}

func (r *FilialRepo) scanRow(row pgx.Row) (*entity.Filial, error) {
	var f entity.Filial
	err := row.Scan(
		&f.ID, &f.Nome, &f.Tipo, &f.Endereco, &f.Cidade, &f.Estado, &f.Telefone, &f.Ativo,
		&f.CriadoEm, &f.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan filial: %w", err)
	}
	return &f, nil
}

// GetByID obtém uma filial por ID. Retorna (nil, nil) se não existe.
func (r *FilialRepo) GetByID(ctx context.Context, id string) (*entity.Filial, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+filialColunas+` FROM filiais WHERE id = $1`, id))
}

// GetByNome obtém uma filial pelo nome (chave de referência). Retorna (nil, nil) se não existe.
func (r *FilialRepo) GetByNome(ctx context.Context, nome string) (*entity.Filial, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+filialColunas+` FROM filiais WHERE nome = $1`, nome))
}

// Update atualiza uma filial existente.
func (r *FilialRepo) Update(ctx context.Context, f *entity.Filial) error {
	query := `
		UPDATE filiais SET nome = $2, tipo = $3, endereco = $4, cidade = $5, estado = $6,
			telefone = $7, ativo = $8, atualizado_em = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Nome, f.Tipo, f.Endereco, f.Cidade, f.Estado, f.Telefone, f.Ativo, f.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update filial: %w", err)
	}
	return nil
}

// List lista todas as filiais ordenadas por nome.
func (r *FilialRepo) List(ctx context.Context) ([]*entity.Filial, error) {
	rows, err := r.q.Query(ctx, `SELECT `+filialColunas+` FROM filiais ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list filiais: %w", err)
	}
	defer rows.Close()
	var list []*entity.Filial
	for rows.Next() {
		var f entity.Filial
		if err := rows.Scan(
			&f.ID, &f.Nome, &f.Tipo, &f.Endereco, &f.Cidade, &f.Estado, &f.Telefone, &f.Ativo,
			&f.CriadoEm, &f.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan filial: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete remove fisicamente uma filial por ID.
func (r *FilialRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM filiais WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete filial: %w", err)
	}
	return nil
}
