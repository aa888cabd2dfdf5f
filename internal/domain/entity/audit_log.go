package entity

import "time"

// Ações registradas no log de auditoria.
const (
	AcaoCriacao     = "CRIACAO"     // entidade criada
	AcaoAlteracao   = "ALTERACAO"   // um campo escalar mudou (campo/valor_anterior/valor_novo)
	AcaoAdicao      = "ADICAO"      // itens adicionados a um campo de lista
	AcaoRemocao     = "REMOCAO"     // itens removidos de um campo de lista
	AcaoAtualizacao = "ATUALIZACAO" // resumo de uma requisição que alterou >= 1 campo
	AcaoExclusao    = "EXCLUSAO"    // remoção física (hard delete), entrada terminal
)

// Entidades auditadas.
const (
	EntidadeAtivo    = "Ativo"
	EntidadeCelular  = "Celular"
	EntidadeSoftware = "Software"
	EntidadeEmail    = "Email"
	EntidadeFilial   = "Filial"
)

// AuditLog é uma entrada imutável do trilho de auditoria. Uma vez gravada,
// nunca é alterada nem removida; a ordem de inserção dentro de uma mesma
// requisição é a ordem em que as mutações foram aplicadas.
type AuditLog struct {
	ID         string
	Entidade   string
	EntidadeID string
	Acao       string

	// Preenchidos em ALTERACAO.
	Campo         string
	ValorAnterior string
	ValorNovo     string

	// Preenchidos em ADICAO / REMOCAO.
	ItensAdicionados []string
	ItensRemovidos   []string

	// Preenchidos em CRIACAO / ATUALIZACAO.
	CamposAlterados []string

	Usuario   string
	Detalhes  string
	Timestamp time.Time
}
