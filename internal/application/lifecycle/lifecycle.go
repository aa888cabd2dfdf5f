// Package lifecycle concentra a máquina de estados de soft delete, hard delete
// e reativação, compartilhada por todos os tipos de entidade. O hard delete não
// é um estado: é a ausência do registro, alcançada por uma transição terminal
// condicionada à permissão admin.
package lifecycle

import (
	"fmt"

	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// Maquina é a máquina de estados de um tipo de entidade: o conjunto de status
// válidos e o status que representa o soft delete.
type Maquina struct {
	validos []string
}

// Patrimonios: quatro estados para ativos e celulares.
var Patrimonios = Maquina{validos: []string{
	entity.StatusEmUso,
	entity.StatusReserva,
	entity.StatusManutencao,
	entity.StatusInativo,
}}

// Licencas: dois estados para softwares e e-mails.
var Licencas = Maquina{validos: []string{
	entity.StatusAtivo,
	entity.StatusInativo,
}}

// Valido informa se status pertence ao conjunto da máquina.
func (m Maquina) Valido(status string) bool {
	for _, s := range m.validos {
		if s == status {
			return true
		}
	}
	return false
}

// Padrao devolve o status inicial de um registro recém-criado.
func (m Maquina) Padrao() string {
	return m.validos[0]
}

// SoftDelete transiciona qualquer status para Inativo. Um registro já
// Inativo não pode ser inativado de novo.
func (m Maquina) SoftDelete(statusAtual string) (string, error) {
	if statusAtual == entity.StatusInativo {
		return "", fmt.Errorf("registro já está inativo: %w", domain.ErrConflito)
	}
	return entity.StatusInativo, nil
}

// HardDelete autoriza a remoção física. Exclusiva de atores com admin;
// a gravação da entrada terminal de auditoria e a remoção em si ficam a
// cargo do caso de uso, na mesma transação.
func (m Maquina) HardDelete(ator entity.Ator) error {
	if !ator.Admin() {
		return fmt.Errorf("exclusão definitiva requer admin: %w", domain.ErrPermissaoNegada)
	}
	return nil
}

// Definir valida uma transição direta para o status pedido (inclui
// reativação: Inativo -> qualquer status ativo). Todas as transições entre
// status válidos são permitidas.
func (m Maquina) Definir(status string) (string, error) {
	if !m.Valido(status) {
		return "", fmt.Errorf("status %q não reconhecido: %w", status, domain.ErrValidacao)
	}
	return status, nil
}
