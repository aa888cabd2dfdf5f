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

var _ repository.CelularRepository = (*CelularRepo)(nil)

const celularColunas = `id, patrimonio, filial, modelo, imei, numero, operadora, responsavel,
	status, observacoes, dt_compra, valor, criado_em, atualizado_em`

// CelularRepo implementação do porto CelularRepository sobre PostgreSQL (pool ou tx).
type CelularRepo struct {
	q Querier
}

// NewCelularRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCelularRepository(q Querier) *CelularRepo {
	return &CelularRepo{q: q}
}

// Create persiste um novo celular.
func (r *CelularRepo) Create(ctx context.Context, c *entity.Celular) error {
	query := `
		INSERT INTO celulares (` + celularColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Patrimonio, c.Filial, c.Modelo, c.IMEI, c.Numero, c.Operadora, c.Responsavel,
		c.Status, c.Observacoes, c.DtCompra, c.Valor, c.CriadoEm, c.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert celular: %w", err)
	}
	return nil
}

func (r *CelularRepo) scanRow(row pgx.Row) (*entity.Celular, error) {
	var c entity.Celular
	err := row.Scan(
		&c.ID, &c.Patrimonio, &c.Filial, &c.Modelo, &c.IMEI, &c.Numero, &c.Operadora, &c.Responsavel,
		&c.Status, &c.Observacoes, &c.DtCompra, &c.Valor, &c.CriadoEm, &c.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan celular: %w", err)
	}
	return &c, nil
}

// GetByID obtém um celular por ID. Retorna (nil, nil) se não existe.
func (r *CelularRepo) GetByID(ctx context.Context, id string) (*entity.Celular, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+celularColunas+` FROM celulares WHERE id = $1`, id))
}

// GetByPatrimonio obtém um celular pela chave natural. Retorna (nil, nil) se não existe.
func (r *CelularRepo) GetByPatrimonio(ctx context.Context, patrimonio string) (*entity.Celular, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+celularColunas+` FROM celulares WHERE patrimonio = $1`, patrimonio))
}

// Update atualiza um celular existente.
func (r *CelularRepo) Update(ctx context.Context, c *entity.Celular) error {
	query := `
		UPDATE celulares SET patrimonio = $2, filial = $3, modelo = $4, imei = $5, numero = $6,
			operadora = $7, responsavel = $8, status = $9, observacoes = $10, dt_compra = $11,
			valor = $12, atualizado_em = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Patrimonio, c.Filial, c.Modelo, c.IMEI, c.Numero,
		c.Operadora, c.Responsavel, c.Status, c.Observacoes, c.DtCompra,
		c.Valor, c.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update celular: %w", err)
	}
	return nil
}

// List lista celulares; Inativos ficam fora salvo IncluirInativos.
func (r *CelularRepo) List(ctx context.Context, filtro repository.FiltroPatrimonio) ([]*entity.Celular, error) {
	query := `SELECT ` + celularColunas + ` FROM celulares WHERE 1=1`
	var args []any
	if !filtro.IncluirInativos {
		query += ` AND status <> 'Inativo'`
	}
	if filtro.Filial != "" {
		args = append(args, filtro.Filial)
		query += fmt.Sprintf(` AND filial = $%d`, len(args))
	}
	if filtro.Status != "" {
		args = append(args, filtro.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY patrimonio`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list celulares: %w", err)
	}
	defer rows.Close()
	var list []*entity.Celular
	for rows.Next() {
		var c entity.Celular
		if err := rows.Scan(
			&c.ID, &c.Patrimonio, &c.Filial, &c.Modelo, &c.IMEI, &c.Numero, &c.Operadora, &c.Responsavel,
			&c.Status, &c.Observacoes, &c.DtCompra, &c.Valor, &c.CriadoEm, &c.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan celular: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete remove fisicamente um celular por ID.
func (r *CelularRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM celulares WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete celular: %w", err)
	}
	return nil
}

// CountByFilial conta celulares não-inativos referenciando a filial.
func (r *CelularRepo) CountByFilial(ctx context.Context, filial string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM celulares WHERE filial = $1 AND status <> 'Inativo'`, filial,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count celulares por filial: %w", err)
	}
	return n, nil
}

// ListResponsaveis lista responsáveis distintos de celulares ativos, opcionalmente por filial.
func (r *CelularRepo) ListResponsaveis(ctx context.Context, filial string) ([]string, error) {
	query := `SELECT DISTINCT responsavel FROM celulares WHERE responsavel <> '' AND status <> 'Inativo'`
	var args []any
	if filial != "" {
		args = append(args, filial)
		query += ` AND filial = $1`
	}
	query += ` ORDER BY responsavel`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list responsaveis: %w", err)
	}
	defer rows.Close()
	var nomes []string
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, fmt.Errorf("scan responsavel: %w", err)
		}
		nomes = append(nomes, nome)
	}
	return nomes, rows.Err()
}
