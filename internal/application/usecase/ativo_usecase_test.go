package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

var (
	editor = entity.Ator{ID: "u-1", Nome: "maria", Permissoes: []string{"view", "edit", "delete"}}
	admin  = entity.Ator{ID: "u-2", Nome: "root", Permissoes: []string{"admin"}}
)

func criarAtivo(t *testing.T, c *cenario, patrimonio string) *dto.AtivoResponse {
	t.Helper()
	resp, err := c.uc.Create(context.Background(), dto.CreateAtivoRequest{
		Patrimonio:  patrimonio,
		Tipo:        "Notebook",
		Marca:       "Dell",
		Filial:      "Matriz",
		Responsavel: "João",
		Valor:       "3.500,00",
		DtCompra:    "2023-05-10",
	}, editor)
	require.NoError(t, err)
	return resp
}

// ─────────────────────────────────────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateAtivo(t *testing.T) {
	c := novoCenario()
	resp := criarAtivo(t, c, "PAT-001")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.StatusEmUso, resp.Status, "status padrão quando omitido")
	assert.Equal(t, "3500", resp.Valor.String())

	// A criação grava exatamente uma entrada CRIACAO, na mesma transação.
	require.Len(t, c.logs.entradas, 1)
	e := c.logs.entradas[0]
	assert.Equal(t, entity.AcaoCriacao, e.Acao)
	assert.Equal(t, resp.ID, e.EntidadeID)
	assert.Equal(t, "maria", e.Usuario)

	assert.Equal(t, uint64(1), c.feed.Versao(changefeed.ColecaoAtivos))
}

func TestCreateAtivoSemPatrimonio(t *testing.T) {
	c := novoCenario()
	_, err := c.uc.Create(context.Background(), dto.CreateAtivoRequest{}, editor)
	assert.ErrorIs(t, err, domain.ErrValidacao)
	assert.Empty(t, c.logs.entradas, "validação que falha não deixa auditoria para trás")
}

func TestCreateAtivoPatrimonioDuplicado(t *testing.T) {
	c := novoCenario()
	criarAtivo(t, c, "PAT-001")

	_, err := c.uc.Create(context.Background(), dto.CreateAtivoRequest{Patrimonio: "PAT-001"}, editor)
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestCreateAtivoStatusInvalido(t *testing.T) {
	c := novoCenario()
	_, err := c.uc.Create(context.Background(), dto.CreateAtivoRequest{
		Patrimonio: "PAT-001",
		Status:     "Emprestado",
	}, editor)
	assert.ErrorIs(t, err, domain.ErrValidacao)
}

// ─────────────────────────────────────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateAtivoAuditaCadaCampo(t *testing.T) {
	c := novoCenario()
	resp := criarAtivo(t, c, "PAT-001")
	c.logs.entradas = nil

	setor := "Financeiro"
	responsavel := "Ana"
	_, err := c.uc.Update(context.Background(), resp.ID, dto.UpdateAtivoRequest{
		Setor:       &setor,
		Responsavel: &responsavel,
	}, editor)
	require.NoError(t, err)

	// Uma ALTERACAO por campo, na ordem dos campos, mais o resumo.
	require.Len(t, c.logs.entradas, 3)
	assert.Equal(t, "setor", c.logs.entradas[0].Campo)
	assert.Equal(t, "", c.logs.entradas[0].ValorAnterior)
	assert.Equal(t, "Financeiro", c.logs.entradas[0].ValorNovo)
	assert.Equal(t, "responsavel", c.logs.entradas[1].Campo)
	assert.Equal(t, "João", c.logs.entradas[1].ValorAnterior)
	assert.Equal(t, entity.AcaoAtualizacao, c.logs.entradas[2].Acao)
	assert.Equal(t, []string{"setor", "responsavel"}, c.logs.entradas[2].CamposAlterados)
}

func TestUpdateAtivoSemMudancaNaoAudita(t *testing.T) {
	c := novoCenario()
	resp := criarAtivo(t, c, "PAT-001")
	c.logs.entradas = nil
	versao := c.feed.Versao(changefeed.ColecaoAtivos)

	// Mesmo valor do campo: nenhum write, nenhuma entrada, versão parada.
	tipo := "Notebook"
	_, err := c.uc.Update(context.Background(), resp.ID, dto.UpdateAtivoRequest{Tipo: &tipo}, editor)
	require.NoError(t, err)

	assert.Empty(t, c.logs.entradas)
	assert.Equal(t, versao, c.feed.Versao(changefeed.ColecaoAtivos))
}

func TestUpdateAtivoCampoNilNaoToca(t *testing.T) {
	c := novoCenario()
	resp := criarAtivo(t, c, "PAT-001")

	marca := "Lenovo"
	atualizado, err := c.uc.Update(context.Background(), resp.ID, dto.UpdateAtivoRequest{Marca: &marca}, editor)
	require.NoError(t, err)

	assert.Equal(t, "Lenovo", atualizado.Marca)
	assert.Equal(t, "Notebook", atualizado.Tipo)
	assert.Equal(t, "João", atualizado.Responsavel)
}

func TestUpdateAtivoInexistente(t *testing.T) {
	c := novoCenario()
	_, err := c.uc.Update(context.Background(), "a-404", dto.UpdateAtivoRequest{}, editor)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete e reativação
// ─────────────────────────────────────────────────────────────────────────────

func TestSoftDeleteInativaEPreservaORegistro(t *testing.T) {
	c := novoCenario()
	resp := criarAtivo(t, c, "PAT-001")
	c.logs.entradas = nil

	require.NoError(t, c.uc.Delete(context.Background(), resp.ID, false, editor))

	a, _ := c.ativos.GetByID(context.Background(), resp.ID)
	require.NotNil(t, a, "soft delete não remove o registro")
	assert.Equal(t, entity.StatusInativo, a.Status)

	// A inativação audita como mudança de status, não como exclusão.
	require.NotEmpty(t, c.logs.entradas)
	assert.Equal(t, entity.AcaoAlteracao, c.logs.entradas[0].Acao)
	assert.Equal(t, "status", c.logs.entradas[0].Campo)
	assert.Equal(t, entity.StatusInativo, c.logs.entradas[0].ValorNovo)

	// Inativar de novo é conflito.
	assert.ErrorIs(t, c.uc.Delete(context.Background(), resp.ID, false, editor), domain.ErrConflito)
}

func TestHardDeleteSoAdmin(t *testing.T) {
	c := novoCenario()
	resp := criarAtivo(t, c, "PAT-001")

	err := c.uc.Delete(context.Background(), resp.ID, true, editor)
	assert.ErrorIs(t, err, domain.ErrPermissaoNegada)

	a, _ := c.ativos.GetByID(context.Background(), resp.ID)
	assert.NotNil(t, a, "sem admin nada é removido")
}

func TestHardDeleteRemoveEGravaEntradaTerminal(t *testing.T) {
	c := novoCenario()
	resp := criarAtivo(t, c, "PAT-001")
	c.logs.entradas = nil

	require.NoError(t, c.uc.Delete(context.Background(), resp.ID, true, admin))

	a, _ := c.ativos.GetByID(context.Background(), resp.ID)
	assert.Nil(t, a)

	// A entrada EXCLUSAO sobrevive à remoção do registro.
	require.Len(t, c.logs.entradas, 1)
	assert.Equal(t, entity.AcaoExclusao, c.logs.entradas[0].Acao)
	assert.Equal(t, resp.ID, c.logs.entradas[0].EntidadeID)
}

func TestReativacaoViaUpdateDeStatus(t *testing.T) {
	c := novoCenario()
	resp := criarAtivo(t, c, "PAT-001")
	require.NoError(t, c.uc.Delete(context.Background(), resp.ID, false, editor))

	status := entity.StatusReserva
	atualizado, err := c.uc.Update(context.Background(), resp.ID, dto.UpdateAtivoRequest{Status: &status}, editor)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReserva, atualizado.Status)
}

// ─────────────────────────────────────────────────────────────────────────────
// List
// ─────────────────────────────────────────────────────────────────────────────

func TestListExcluiInativosPorPadrao(t *testing.T) {
	c := novoCenario()
	criarAtivo(t, c, "PAT-001")
	inativo := criarAtivo(t, c, "PAT-002")
	require.NoError(t, c.uc.Delete(context.Background(), inativo.ID, false, editor))

	list, err := c.uc.List(context.Background(), repository.FiltroPatrimonio{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "PAT-001", list[0].Patrimonio)

	list, err = c.uc.List(context.Background(), repository.FiltroPatrimonio{IncluirInativos: true})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
