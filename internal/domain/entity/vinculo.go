package entity

// Tags de tipo reconhecidas para o vínculo polimórfico de e-mails.
const (
	VinculoWorkstation = "workstation"
	VinculoCelular     = "celular"
)

// VinculoPai é a referência polimórfica resolvida: aponta para um Ativo ou um
// Celular, carregando a tag de tipo junto do identificador. Construída pelo
// resolver antes de qualquer mutação — nunca circula como par solto de strings.
type VinculoPai struct {
	Tipo       string // workstation | celular
	ID         string
	Patrimonio string
}

// TipoVinculoValido informa se t é uma tag de vínculo reconhecida.
func TipoVinculoValido(t string) bool {
	return t == VinculoWorkstation || t == VinculoCelular
}
