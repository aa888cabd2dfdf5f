package usecase_test

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes em memória para os casos de uso. Entidades entram e saem por cópia,
// como numa base real: mutar o retorno não muda o armazenado.
// ─────────────────────────────────────────────────────────────────────────────

type memAtivos struct{ porID map[string]*entity.Ativo }

func newMemAtivos() *memAtivos {
	return &memAtivos{porID: map[string]*entity.Ativo{}}
}

func (m *memAtivos) Create(_ context.Context, a *entity.Ativo) error {
	c := *a
	m.porID[a.ID] = &c
	return nil
}

func (m *memAtivos) GetByID(_ context.Context, id string) (*entity.Ativo, error) {
	if a, ok := m.porID[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, nil
}

func (m *memAtivos) GetByPatrimonio(_ context.Context, pat string) (*entity.Ativo, error) {
	for _, a := range m.porID {
		if a.Patrimonio == pat {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memAtivos) Update(_ context.Context, a *entity.Ativo) error {
	c := *a
	m.porID[a.ID] = &c
	return nil
}

func (m *memAtivos) List(_ context.Context, filtro repository.FiltroPatrimonio) ([]*entity.Ativo, error) {
	var out []*entity.Ativo
	for _, a := range m.porID {
		if !filtro.IncluirInativos && a.Status == entity.StatusInativo {
			continue
		}
		if filtro.Filial != "" && a.Filial != filtro.Filial {
			continue
		}
		if filtro.Status != "" && a.Status != filtro.Status {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (m *memAtivos) Delete(_ context.Context, id string) error {
	delete(m.porID, id)
	return nil
}

func (m *memAtivos) CountByFilial(_ context.Context, filial string) (int, error) {
	n := 0
	for _, a := range m.porID {
		if a.Filial == filial && a.Status != entity.StatusInativo {
			n++
		}
	}
	return n, nil
}

func (m *memAtivos) ListResponsaveis(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

type memLogs struct{ entradas []*entity.AuditLog }

func (m *memLogs) Append(_ context.Context, entradas ...*entity.AuditLog) error {
	m.entradas = append(m.entradas, entradas...)
	return nil
}

func (m *memLogs) List(_ context.Context, usuario string, limite int) ([]*entity.AuditLog, error) {
	var out []*entity.AuditLog
	for i := len(m.entradas) - 1; i >= 0 && len(out) < limite; i-- {
		if usuario != "" && m.entradas[i].Usuario != usuario {
			continue
		}
		out = append(out, m.entradas[i])
	}
	return out, nil
}

func (m *memLogs) ListByEntidade(_ context.Context, entidadeID string, limite int) ([]*entity.AuditLog, error) {
	var out []*entity.AuditLog
	for i := len(m.entradas) - 1; i >= 0 && len(out) < limite; i-- {
		if m.entradas[i].EntidadeID == entidadeID {
			out = append(out, m.entradas[i])
		}
	}
	return out, nil
}

func (m *memLogs) Estatisticas(_ context.Context) (*repository.LogEstatisticas, error) {
	return &repository.LogEstatisticas{Total: len(m.entradas)}, nil
}

// memTx executa fn direto contra o Store em memória; falha de fn não desfaz
// nada (os testes de rollback de verdade vivem na camada postgres).
type memTx struct{ store usecase.Store }

func (t memTx) Run(_ context.Context, fn func(usecase.Store) error) error { return fn(t.store) }

// cenario amarra os fakes a um AtivoUseCase pronto para teste.
type cenario struct {
	uc     *usecase.AtivoUseCase
	ativos *memAtivos
	logs   *memLogs
	feed   *changefeed.Feed
}

func novoCenario() *cenario {
	ativos := newMemAtivos()
	logs := &memLogs{}
	feed := changefeed.New()
	tx := memTx{store: usecase.Store{Ativos: ativos, Logs: logs}}
	return &cenario{
		uc:     usecase.NewAtivoUseCase(ativos, tx, feed),
		ativos: ativos,
		logs:   logs,
		feed:   feed,
	}
}
