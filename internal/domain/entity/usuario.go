package entity

import "time"

// Permissões válidas para Usuario.
const (
	PermView   = "view"
	PermEdit   = "edit"
	PermDelete = "delete"
	PermAdmin  = "admin"
)

// Usuario representa um usuário do sistema.
type Usuario struct {
	ID           string
	Username     string // único
	SenhaHash    string // bcrypt, nunca em claro após persistir
	Nome         string
	Email        string
	Filial       string
	Permissoes   []string // subconjunto de {view, edit, delete, admin}
	Ativo        bool
	UltimoLogin  *time.Time
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// Ator é a identidade que executa uma mutação, resolvida a partir do token
// pela camada HTTP. O núcleo confia no conjunto de permissões recebido.
type Ator struct {
	ID         string
	Nome       string
	Permissoes []string
}

// Tem informa se o ator possui a permissão dada. Admin implica as demais.
func (a Ator) Tem(perm string) bool {
	for _, p := range a.Permissoes {
		if p == perm || p == PermAdmin {
			return true
		}
	}
	return false
}

// Admin informa se o ator possui a permissão admin.
func (a Ator) Admin() bool {
	for _, p := range a.Permissoes {
		if p == PermAdmin {
			return true
		}
	}
	return false
}
