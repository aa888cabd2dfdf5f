package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// CapturarCriacao emite a entrada única de CRIACAO de uma entidade,
// sem pré-imagem, listando os campos preenchidos.
func CapturarCriacao(entidade, entidadeID, descricao string, depois Snapshot, usuario string) []*entity.AuditLog {
	return []*entity.AuditLog{{
		ID:              uuid.New().String(),
		Entidade:        entidade,
		EntidadeID:      entidadeID,
		Acao:            entity.AcaoCriacao,
		CamposAlterados: depois.Nomes(),
		Usuario:         usuario,
		Detalhes:        fmt.Sprintf("%s %s cadastrado no sistema", entidade, descricao),
		Timestamp:       time.Now(),
	}}
}

// CapturarAtualizacao compara a pré-imagem com a pós-imagem e emite uma
// entrada ALTERACAO por campo cujo valor mudou, na ordem de declaração dos
// campos, seguida de uma entrada ATUALIZACAO de resumo quando houve ao menos
// uma mudança. Campos ausentes da pós-imagem são tratados como inalterados
// (semântica de atualização parcial). Sem mudanças, devolve nil.
func CapturarAtualizacao(entidade, entidadeID, descricao string, antes, depois Snapshot, usuario string) []*entity.AuditLog {
	agora := time.Now()
	var entradas []*entity.AuditLog
	var alterados []string

	for _, campo := range depois.Campos() {
		anterior, presente := antes.Valor(campo.Nome)
		if presente && anterior == campo.Valor {
			continue
		}
		entradas = append(entradas, &entity.AuditLog{
			ID:            uuid.New().String(),
			Entidade:      entidade,
			EntidadeID:    entidadeID,
			Acao:          entity.AcaoAlteracao,
			Campo:         campo.Nome,
			ValorAnterior: anterior,
			ValorNovo:     campo.Valor,
			Usuario:       usuario,
			Timestamp:     agora,
		})
		alterados = append(alterados, campo.Nome)
	}

	if len(alterados) == 0 {
		return nil
	}

	entradas = append(entradas, &entity.AuditLog{
		ID:              uuid.New().String(),
		Entidade:        entidade,
		EntidadeID:      entidadeID,
		Acao:            entity.AcaoAtualizacao,
		CamposAlterados: alterados,
		Usuario:         usuario,
		Detalhes:        fmt.Sprintf("%s %s atualizado", entidade, descricao),
		Timestamp:       agora,
	})
	return entradas
}

// CapturarLista compara duas listas de itens de um campo coleção e emite
// ADICAO e/ou REMOCAO com os itens que entraram e saíram. A comparação é por
// igualdade de valor; a ordem dos itens não importa.
func CapturarLista(entidade, entidadeID, campo string, antes, depois []string, usuario string) []*entity.AuditLog {
	agora := time.Now()
	adicionados := diferenca(depois, antes)
	removidos := diferenca(antes, depois)

	var entradas []*entity.AuditLog
	if len(adicionados) > 0 {
		entradas = append(entradas, &entity.AuditLog{
			ID:               uuid.New().String(),
			Entidade:         entidade,
			EntidadeID:       entidadeID,
			Acao:             entity.AcaoAdicao,
			Campo:            campo,
			ItensAdicionados: adicionados,
			Usuario:          usuario,
			Timestamp:        agora,
		})
	}
	if len(removidos) > 0 {
		entradas = append(entradas, &entity.AuditLog{
			ID:             uuid.New().String(),
			Entidade:       entidade,
			EntidadeID:     entidadeID,
			Acao:           entity.AcaoRemocao,
			Campo:          campo,
			ItensRemovidos: removidos,
			Usuario:        usuario,
			Timestamp:      agora,
		})
	}
	return entradas
}

// CapturarExclusao emite a entrada terminal de EXCLUSAO (hard delete),
// gravada antes da remoção física, na mesma transação.
func CapturarExclusao(entidade, entidadeID, descricao string, usuario string) []*entity.AuditLog {
	return []*entity.AuditLog{{
		ID:         uuid.New().String(),
		Entidade:   entidade,
		EntidadeID: entidadeID,
		Acao:       entity.AcaoExclusao,
		Usuario:    usuario,
		Detalhes:   fmt.Sprintf("%s %s excluído definitivamente", entidade, descricao),
		Timestamp:  time.Now(),
	}}
}

// diferenca devolve os itens de a que não estão em b, preservando a ordem de a.
func diferenca(a, b []string) []string {
	existe := make(map[string]bool, len(b))
	for _, item := range b {
		existe[item] = true
	}
	var resto []string
	for _, item := range a {
		if !existe[item] {
			resto = append(resto, item)
		}
	}
	return resto
}
