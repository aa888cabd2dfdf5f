package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

const auditLogColunas = `id, entidade, entidade_id, acao, campo, valor_anterior, valor_novo,
	itens_adicionados, itens_removidos, campos_alterados, usuario, detalhes, "timestamp"`

// AuditLogRepo implementação append-only do trilho de auditoria sobre PostgreSQL.
// A tabela não recebe UPDATE nem DELETE: entradas são imutáveis.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Append grava as entradas na ordem recebida. Um id serial na tabela preserva
// a ordem de inserção dentro do mesmo timestamp.
func (r *AuditLogRepo) Append(ctx context.Context, entradas ...*entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (` + auditLogColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, e := range entradas {
		_, err := r.q.Exec(ctx, query,
			e.ID, e.Entidade, e.EntidadeID, e.Acao, e.Campo, e.ValorAnterior, e.ValorNovo,
			e.ItensAdicionados, e.ItensRemovidos, e.CamposAlterados, e.Usuario, e.Detalhes, e.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("insert audit log: %w", err)
		}
	}
	return nil
}

// List retorna entradas em ordem cronológica reversa, opcionalmente filtradas
// pelo usuário que executou a ação.
func (r *AuditLogRepo) List(ctx context.Context, usuario string, limite int) ([]*entity.AuditLog, error) {
	query := `SELECT ` + auditLogColunas + ` FROM audit_logs`
	var args []any
	if usuario != "" {
		args = append(args, usuario)
		query += ` WHERE usuario = $1`
	}
	args = append(args, limite)
	query += fmt.Sprintf(` ORDER BY "timestamp" DESC, seq DESC LIMIT $%d`, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListByEntidade retorna o histórico de uma entidade, mais recente primeiro.
func (r *AuditLogRepo) ListByEntidade(ctx context.Context, entidadeID string, limite int) ([]*entity.AuditLog, error) {
	query := `SELECT ` + auditLogColunas + ` FROM audit_logs
		WHERE entidade_id = $1 ORDER BY "timestamp" DESC, seq DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, entidadeID, limite)
	if err != nil {
		return nil, fmt.Errorf("list audit logs por entidade: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *AuditLogRepo) scanRows(rows pgx.Rows) ([]*entity.AuditLog, error) {
	var list []*entity.AuditLog
	for rows.Next() {
		var e entity.AuditLog
		if err := rows.Scan(
			&e.ID, &e.Entidade, &e.EntidadeID, &e.Acao, &e.Campo, &e.ValorAnterior, &e.ValorNovo,
			&e.ItensAdicionados, &e.ItensRemovidos, &e.CamposAlterados, &e.Usuario, &e.Detalhes, &e.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Estatisticas devolve agregados do trilho: total, usuários e ações distintos,
// e contagem por ação.
func (r *AuditLogRepo) Estatisticas(ctx context.Context) (*repository.LogEstatisticas, error) {
	st := &repository.LogEstatisticas{PorAcao: map[string]int{}}

	err := r.q.QueryRow(ctx, `SELECT count(*) FROM audit_logs`).Scan(&st.Total)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("count audit logs: %w", err)
	}

	rows, err := r.q.Query(ctx, `SELECT DISTINCT usuario FROM audit_logs WHERE usuario <> '' ORDER BY usuario`)
	if err != nil {
		return nil, fmt.Errorf("usuarios distintos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		st.Usuarios = append(st.Usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	acaoRows, err := r.q.Query(ctx, `SELECT acao, count(*) FROM audit_logs GROUP BY acao ORDER BY acao`)
	if err != nil {
		return nil, fmt.Errorf("contagem por acao: %w", err)
	}
	defer acaoRows.Close()
	for acaoRows.Next() {
		var acao string
		var n int
		if err := acaoRows.Scan(&acao, &n); err != nil {
			return nil, fmt.Errorf("scan acao: %w", err)
		}
		st.Acoes = append(st.Acoes, acao)
		st.PorAcao[acao] = n
	}
	return st, acaoRows.Err()
}
