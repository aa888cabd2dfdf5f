package repository

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// LogEstatisticas agregados sobre o trilho de auditoria.
type LogEstatisticas struct {
	Total    int
	Usuarios []string
	Acoes    []string
	PorAcao  map[string]int
}

// AuditLogRepository define o porto append-only do trilho de auditoria.
// Não há Update nem Delete: entradas gravadas são imutáveis.
type AuditLogRepository interface {
	// Append grava as entradas na ordem recebida.
	Append(ctx context.Context, entradas ...*entity.AuditLog) error
	// List retorna entradas em ordem cronológica reversa, opcionalmente
	// filtradas pelo usuário que executou a ação.
	List(ctx context.Context, usuario string, limite int) ([]*entity.AuditLog, error)
	// ListByEntidade retorna o histórico de uma entidade, mais recente primeiro.
	ListByEntidade(ctx context.Context, entidadeID string, limite int) ([]*entity.AuditLog, error)
	Estatisticas(ctx context.Context) (*LogEstatisticas, error)
}
