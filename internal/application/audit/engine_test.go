package audit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refricriltecno/inventario-ti/internal/application/audit"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

func ativoBase() *entity.Ativo {
	dt := time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)
	return &entity.Ativo{
		ID:          "a-1",
		Patrimonio:  "PAT-001",
		Tipo:        "Notebook",
		Marca:       "Dell",
		Modelo:      "Latitude 5420",
		Filial:      "Matriz",
		Setor:       "TI",
		Responsavel: "João Silva",
		Status:      entity.StatusEmUso,
		DtCompra:    &dt,
		Valor:       decimal.NewFromInt(4500),
	}
}

func TestCapturarCriacao(t *testing.T) {
	a := ativoBase()
	entradas := audit.CapturarCriacao(entity.EntidadeAtivo, a.ID, a.Patrimonio, audit.SnapshotAtivo(a), "maria")

	require.Len(t, entradas, 1)
	e := entradas[0]
	assert.Equal(t, entity.AcaoCriacao, e.Acao)
	assert.Equal(t, entity.EntidadeAtivo, e.Entidade)
	assert.Equal(t, "a-1", e.EntidadeID)
	assert.Equal(t, "maria", e.Usuario)
	assert.Equal(t, "Ativo PAT-001 cadastrado no sistema", e.Detalhes)
	// Snapshot completo vira a lista de campos do registro de criação.
	assert.Contains(t, e.CamposAlterados, "patrimonio")
	assert.Contains(t, e.CamposAlterados, "valor")
	assert.NotEmpty(t, e.ID)
}

func TestCapturarAtualizacaoEmiteUmaEntradaPorCampo(t *testing.T) {
	antes := ativoBase()
	depois := *antes
	depois.Setor = "Financeiro"
	depois.Responsavel = "Ana Costa"

	entradas := audit.CapturarAtualizacao(entity.EntidadeAtivo, antes.ID, antes.Patrimonio,
		audit.SnapshotAtivo(antes), audit.SnapshotAtivo(&depois), "maria")

	// Duas ALTERACAO (na ordem dos campos do snapshot) + uma ATUALIZACAO de resumo.
	require.Len(t, entradas, 3)

	assert.Equal(t, entity.AcaoAlteracao, entradas[0].Acao)
	assert.Equal(t, "setor", entradas[0].Campo)
	assert.Equal(t, "TI", entradas[0].ValorAnterior)
	assert.Equal(t, "Financeiro", entradas[0].ValorNovo)

	assert.Equal(t, entity.AcaoAlteracao, entradas[1].Acao)
	assert.Equal(t, "responsavel", entradas[1].Campo)
	assert.Equal(t, "João Silva", entradas[1].ValorAnterior)
	assert.Equal(t, "Ana Costa", entradas[1].ValorNovo)

	resumo := entradas[2]
	assert.Equal(t, entity.AcaoAtualizacao, resumo.Acao)
	assert.Equal(t, []string{"setor", "responsavel"}, resumo.CamposAlterados)
	assert.Equal(t, "Ativo PAT-001 atualizado", resumo.Detalhes)
}

func TestCapturarAtualizacaoSemMudancaDevolveNil(t *testing.T) {
	a := ativoBase()
	entradas := audit.CapturarAtualizacao(entity.EntidadeAtivo, a.ID, a.Patrimonio,
		audit.SnapshotAtivo(a), audit.SnapshotAtivo(a), "maria")
	assert.Nil(t, entradas)
}

func TestCapturarAtualizacaoCampoLimpoRegistraValorVazio(t *testing.T) {
	antes := ativoBase()
	depois := *antes
	depois.Responsavel = ""

	entradas := audit.CapturarAtualizacao(entity.EntidadeAtivo, antes.ID, antes.Patrimonio,
		audit.SnapshotAtivo(antes), audit.SnapshotAtivo(&depois), "maria")

	require.Len(t, entradas, 2)
	assert.Equal(t, "João Silva", entradas[0].ValorAnterior)
	assert.Equal(t, "", entradas[0].ValorNovo)
}

func TestCapturarListaAdicaoERemocao(t *testing.T) {
	antes := []string{"Office", "AutoCAD"}
	depois := []string{"Office", "Photoshop", "CorelDRAW"}

	entradas := audit.CapturarLista(entity.EntidadeAtivo, "a-1", "softwares", antes, depois, "maria")

	require.Len(t, entradas, 2)
	assert.Equal(t, entity.AcaoAdicao, entradas[0].Acao)
	assert.Equal(t, []string{"Photoshop", "CorelDRAW"}, entradas[0].ItensAdicionados)
	assert.Equal(t, "softwares", entradas[0].Campo)

	assert.Equal(t, entity.AcaoRemocao, entradas[1].Acao)
	assert.Equal(t, []string{"AutoCAD"}, entradas[1].ItensRemovidos)
}

func TestCapturarListaSemMudanca(t *testing.T) {
	itens := []string{"Office", "AutoCAD"}
	// Ordem diferente não é mudança: comparação por valor.
	entradas := audit.CapturarLista(entity.EntidadeAtivo, "a-1", "softwares",
		itens, []string{"AutoCAD", "Office"}, "maria")
	assert.Empty(t, entradas)
}

func TestCapturarExclusao(t *testing.T) {
	entradas := audit.CapturarExclusao(entity.EntidadeCelular, "c-1", "CEL-010", "admin")

	require.Len(t, entradas, 1)
	assert.Equal(t, entity.AcaoExclusao, entradas[0].Acao)
	assert.Equal(t, "Celular CEL-010 excluído definitivamente", entradas[0].Detalhes)
	assert.Equal(t, "admin", entradas[0].Usuario)
}

func TestSnapshotFormatos(t *testing.T) {
	a := ativoBase()
	s := audit.SnapshotAtivo(a)

	dt, ok := s.Valor("dt_compra")
	require.True(t, ok)
	assert.Equal(t, "2023-05-10", dt)

	valor, _ := s.Valor("valor")
	assert.Equal(t, "4500", valor)

	// Data ausente e valor zero viram string vazia, não "0" nem "nil".
	a.DtCompra = nil
	a.Valor = decimal.Zero
	s = audit.SnapshotAtivo(a)
	dt, _ = s.Valor("dt_compra")
	assert.Equal(t, "", dt)
	valor, _ = s.Valor("valor")
	assert.Equal(t, "", valor)
}
