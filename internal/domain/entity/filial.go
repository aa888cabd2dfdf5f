package entity

import "time"

// Tipos válidos de Filial.
const (
	FilialAdministrativo = "Administrativo"
	FilialLoja           = "Loja"
	FilialCD             = "CD"
)

// Filial representa uma unidade organizacional (matriz, loja, centro de distribuição).
// O nome é a chave de referência usada por ativos, celulares e usuários.
type Filial struct {
	ID           string
	Nome         string // único, sensível a maiúsculas
	Tipo         string // Administrativo, Loja, CD
	Endereco     string
	Cidade       string
	Estado       string
	Telefone     string
	Ativo        bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// TipoFilialValido informa se t é um tipo de filial reconhecido.
func TipoFilialValido(t string) bool {
	switch t {
	case FilialAdministrativo, FilialLoja, FilialCD:
		return true
	}
	return false
}
