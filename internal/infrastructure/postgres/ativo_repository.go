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

var _ repository.AtivoRepository = (*AtivoRepo)(nil)

const ativoColunas = `id, patrimonio, tipo, marca, modelo, numero_serie, filial, setor, responsavel,
	status, senha_bios, senha_os, senha_vpn, observacoes, dt_compra, dt_garantia, valor,
	fornecedor, nota_fiscal, anydesk, criado_em, atualizado_em`

// AtivoRepo implementação do porto AtivoRepository sobre PostgreSQL (pool ou tx).
type AtivoRepo struct {
	q Querier
}

// NewAtivoRepository constrói o adaptador de persistência de ativos. Passar pool ou tx (Querier).
func NewAtivoRepository(q Querier) *AtivoRepo {
	return &AtivoRepo{q: q}
}

// Create persiste um novo ativo.
func (r *AtivoRepo) Create(ctx context.Context, a *entity.Ativo) error {
	query := `
		INSERT INTO ativos (` + ativoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Patrimonio, a.Tipo, a.Marca, a.Modelo, a.NumeroSerie, a.Filial, a.Setor, a.Responsavel,
		a.Status, a.SenhaBios, a.SenhaOS, a.SenhaVPN, a.Observacoes, a.DtCompra, a.DtGarantia, a.Valor,
		a.Fornecedor, a.NotaFiscal, a.Anydesk, a.CriadoEm, a.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert ativo: %w", err)
	}
	return nil
}

func (r *AtivoRepo) scanRow(row pgx.Row) (*entity.Ativo, error) {
	var a entity.Ativo
	err := row.Scan(
		&a.ID, &a.Patrimonio, &a.Tipo, &a.Marca, &a.Modelo, &a.NumeroSerie, &a.Filial, &a.Setor, &a.Responsavel,
		&a.Status, &a.SenhaBios, &a.SenhaOS, &a.SenhaVPN, &a.Observacoes, &a.DtCompra, &a.DtGarantia, &a.Valor,
		&a.Fornecedor, &a.NotaFiscal, &a.Anydesk, &a.CriadoEm, &a.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan ativo: %w", err)
	}
	return &a, nil
}

// GetByID obtém um ativo por ID. Retorna (nil, nil) se não existe.
func (r *AtivoRepo) GetByID(ctx context.Context, id string) (*entity.Ativo, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+ativoColunas+` FROM ativos WHERE id = $1`, id))
}

// GetByPatrimonio obtém um ativo pela chave natural. Retorna (nil, nil) se não existe.
func (r *AtivoRepo) GetByPatrimonio(ctx context.Context, patrimonio string) (*entity.Ativo, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+ativoColunas+` FROM ativos WHERE patrimonio = $1`, patrimonio))
}

// Update atualiza um ativo existente.
func (r *AtivoRepo) Update(ctx context.Context, a *entity.Ativo) error {
	query := `
		UPDATE ativos SET patrimonio = $2, tipo = $3, marca = $4, modelo = $5, numero_serie = $6,
			filial = $7, setor = $8, responsavel = $9, status = $10, senha_bios = $11, senha_os = $12,
			senha_vpn = $13, observacoes = $14, dt_compra = $15, dt_garantia = $16, valor = $17,
			fornecedor = $18, nota_fiscal = $19, anydesk = $20, atualizado_em = $21
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Patrimonio, a.Tipo, a.Marca, a.Modelo, a.NumeroSerie,
		a.Filial, a.Setor, a.Responsavel, a.Status, a.SenhaBios, a.SenhaOS,
		a.SenhaVPN, a.Observacoes, a.DtCompra, a.DtGarantia, a.Valor,
		a.Fornecedor, a.NotaFiscal, a.Anydesk, a.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update ativo: %w", err)
	}
	return nil
}

// List lista ativos; Inativos ficam fora salvo IncluirInativos.
func (r *AtivoRepo) List(ctx context.Context, filtro repository.FiltroPatrimonio) ([]*entity.Ativo, error) {
	query := `SELECT ` + ativoColunas + ` FROM ativos WHERE 1=1`
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
		return nil, fmt.Errorf("list ativos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ativo
	for rows.Next() {
		var a entity.Ativo
		if err := rows.Scan(
			&a.ID, &a.Patrimonio, &a.Tipo, &a.Marca, &a.Modelo, &a.NumeroSerie, &a.Filial, &a.Setor, &a.Responsavel,
			&a.Status, &a.SenhaBios, &a.SenhaOS, &a.SenhaVPN, &a.Observacoes, &a.DtCompra, &a.DtGarantia, &a.Valor,
			&a.Fornecedor, &a.NotaFiscal, &a.Anydesk, &a.CriadoEm, &a.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan ativo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete remove fisicamente um ativo por ID.
func (r *AtivoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM ativos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ativo: %w", err)
	}
	return nil
}

// CountByFilial conta ativos não-inativos referenciando a filial.
func (r *AtivoRepo) CountByFilial(ctx context.Context, filial string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM ativos WHERE filial = $1 AND status <> 'Inativo'`, filial,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ativos por filial: %w", err)
	}
	return n, nil
}

// ListResponsaveis lista responsáveis distintos de ativos ativos, opcionalmente por filial.
func (r *AtivoRepo) ListResponsaveis(ctx context.Context, filial string) ([]string, error) {
	query := `SELECT DISTINCT responsavel FROM ativos WHERE responsavel <> '' AND status <> 'Inativo'`
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
