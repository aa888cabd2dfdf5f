package usecase

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// LogUseCase lado de leitura do trilho de auditoria.
type LogUseCase struct {
	repo repository.AuditLogRepository
}

// NewLogUseCase constrói o caso de uso.
func NewLogUseCase(repo repository.AuditLogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// List devolve as entradas mais recentes, opcionalmente filtradas por usuário.
func (uc *LogUseCase) List(ctx context.Context, usuario string, limite int) ([]dto.AuditLogResponse, error) {
	if limite <= 0 || limite > 1000 {
		limite = 100
	}
	list, err := uc.repo.List(ctx, usuario, limite)
	if err != nil {
		return nil, err
	}
	return toLogResponses(list), nil
}

// ListByEntidade devolve o histórico de uma entidade, mais recente primeiro.
func (uc *LogUseCase) ListByEntidade(ctx context.Context, entidadeID string, limite int) ([]dto.AuditLogResponse, error) {
	if limite <= 0 || limite > 1000 {
		limite = 100
	}
	list, err := uc.repo.ListByEntidade(ctx, entidadeID, limite)
	if err != nil {
		return nil, err
	}
	return toLogResponses(list), nil
}

// Estatisticas devolve os agregados do trilho.
func (uc *LogUseCase) Estatisticas(ctx context.Context) (*dto.LogEstatisticasResponse, error) {
	est, err := uc.repo.Estatisticas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.LogEstatisticasResponse{
		TotalLogs:   est.Total,
		Usuarios:    est.Usuarios,
		Acoes:       est.Acoes,
		LogsPorAcao: est.PorAcao,
	}, nil
}

func toLogResponses(list []*entity.AuditLog) []dto.AuditLogResponse {
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.AuditLogResponse{
			ID:               l.ID,
			Entidade:         l.Entidade,
			EntidadeID:       l.EntidadeID,
			Acao:             l.Acao,
			Campo:            l.Campo,
			ValorAnterior:    l.ValorAnterior,
			ValorNovo:        l.ValorNovo,
			ItensAdicionados: l.ItensAdicionados,
			ItensRemovidos:   l.ItensRemovidos,
			CamposAlterados:  l.CamposAlterados,
			Usuario:          l.Usuario,
			Detalhes:         l.Detalhes,
			Timestamp:        l.Timestamp,
		})
	}
	return items
}
