package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

var _ repository.SoftwareRepository = (*SoftwareRepo)(nil)

const softwareColunas = `id, nome, versao, asset_id, asset_patrimonio, tipo_licenca, chave_licenca,
	dt_instalacao, dt_vencimento, custo_anual, renovacao_automatica, observacoes, status,
	criado_em, atualizado_em`

// SoftwareRepo implementação do porto SoftwareRepository sobre PostgreSQL (pool ou tx).
type SoftwareRepo struct {
	q Querier
}

// NewSoftwareRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSoftwareRepository(q Querier) *SoftwareRepo {
	return &SoftwareRepo{q: q}
}

// Create persiste uma nova licença.
func (r *SoftwareRepo) Create(ctx context.Context, s *entity.Software) error {
	query := `
		INSERT INTO softwares (` + softwareColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Nome, s.Versao, s.AssetID, s.AssetPatrimonio, s.TipoLicenca, s.ChaveLicenca,
		s.DtInstalacao, s.DtVencimento, s.CustoAnual, s.RenovacaoAutomatica, s.Observacoes, s.Status,
		s.CriadoEm, s.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert software: %w", err)
	}
	return nil
}

func (r *SoftwareRepo) scanRow(row pgx.Row) (*entity.Software, error) {
	var s entity.Software
	err := row.Scan(
		&s.ID, &s.Nome, &s.Versao, &s.AssetID, &s.AssetPatrimonio, &s.TipoLicenca, &s.ChaveLicenca,
		&s.DtInstalacao, &s.DtVencimento, &s.CustoAnual, &s.RenovacaoAutomatica, &s.Observacoes, &s.Status,
		&s.CriadoEm, &s.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan software: %w", err)
	}
	return &s, nil
}

// GetByID obtém uma licença por ID. Retorna (nil, nil) se não existe.
func (r *SoftwareRepo) GetByID(ctx context.Context, id string) (*entity.Software, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+softwareColunas+` FROM softwares WHERE id = $1`, id))
}

// GetByNomeAndAsset obtém uma licença pela chave natural (nome, ativo). Retorna (nil, nil) se não existe.
func (r *SoftwareRepo) GetByNomeAndAsset(ctx context.Context, nome, assetID string) (*entity.Software, error) {
	return r.scanRow(r.q.QueryRow(ctx,
		`SELECT `+softwareColunas+` FROM softwares WHERE nome = $1 AND asset_id = $2`, nome, assetID))
}

// Update atualiza uma licença existente.
func (r *SoftwareRepo) Update(ctx context.Context, s *entity.Software) error {
	query := `
		UPDATE softwares SET nome = $2, versao = $3, asset_id = $4, asset_patrimonio = $5,
			tipo_licenca = $6, chave_licenca = $7, dt_instalacao = $8, dt_vencimento = $9,
			custo_anual = $10, renovacao_automatica = $11, observacoes = $12, status = $13,
			atualizado_em = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Nome, s.Versao, s.AssetID, s.AssetPatrimonio,
		s.TipoLicenca, s.ChaveLicenca, s.DtInstalacao, s.DtVencimento,
		s.CustoAnual, s.RenovacaoAutomatica, s.Observacoes, s.Status,
		s.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update software: %w", err)
	}
	return nil
}

// List lista licenças; Inativas ficam fora salvo IncluirInativos.
func (r *SoftwareRepo) List(ctx context.Context, filtro repository.FiltroSoftware) ([]*entity.Software, error) {
	query := `SELECT ` + softwareColunas + ` FROM softwares WHERE 1=1`
	var args []any
	if !filtro.IncluirInativos {
		query += ` AND status <> 'Inativo'`
	}
	if filtro.AssetID != "" {
		args = append(args, filtro.AssetID)
		query += fmt.Sprintf(` AND asset_id = $%d`, len(args))
	}
	query += ` ORDER BY nome`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list softwares: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListVencendo retorna licenças ativas com vencimento entre agora e a data limite.
func (r *SoftwareRepo) ListVencendo(ctx context.Context, ate time.Time) ([]*entity.Software, error) {
	query := `SELECT ` + softwareColunas + ` FROM softwares
		WHERE status <> 'Inativo' AND dt_vencimento IS NOT NULL
			AND dt_vencimento >= now() AND dt_vencimento <= $1
		ORDER BY dt_vencimento`
	rows, err := r.q.Query(ctx, query, ate)
	if err != nil {
		return nil, fmt.Errorf("list softwares vencendo: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *SoftwareRepo) scanRows(rows pgx.Rows) ([]*entity.Software, error) {
	var list []*entity.Software
	for rows.Next() {
		var s entity.Software
		if err := rows.Scan(
			&s.ID, &s.Nome, &s.Versao, &s.AssetID, &s.AssetPatrimonio, &s.TipoLicenca, &s.ChaveLicenca,
			&s.DtInstalacao, &s.DtVencimento, &s.CustoAnual, &s.RenovacaoAutomatica, &s.Observacoes, &s.Status,
			&s.CriadoEm, &s.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan software: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete remove fisicamente uma licença por ID.
func (r *SoftwareRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM softwares WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete software: %w", err)
	}
	return nil
}
