package entity

import "time"

// Provedores válidos de conta de e-mail.
const (
	EmailGoogle    = "google"
	EmailZimbra    = "zimbra"
	EmailMicrosoft = "microsoft"
)

// Email representa uma conta corporativa vinculada a um Ativo ou Celular
// via VinculoPai. Unicidade por (endereço, tipo): o mesmo endereço pode
// existir no Google e no Zimbra como contas distintas.
type Email struct {
	ID           string
	Endereco     string
	Tipo         string // google, zimbra, microsoft
	Vinculo      VinculoPai
	Usuario      string
	Senha        string // string opaca; entra no diff de auditoria
	Recuperacao  string
	Observacoes  string
	Status       string // Ativo, Inativo
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// TipoEmailValido informa se t é um provedor reconhecido.
func TipoEmailValido(t string) bool {
	switch t {
	case EmailGoogle, EmailZimbra, EmailMicrosoft:
		return true
	}
	return false
}
