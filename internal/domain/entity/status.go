package entity

// Status de patrimônios (ativos e celulares). Quatro estados; "Inativo" é o
// soft delete — o registro permanece, mas sai das listagens padrão.
const (
	StatusEmUso      = "Em Uso"
	StatusReserva    = "Reserva"
	StatusManutencao = "Manutenção"
	StatusInativo    = "Inativo"
)

// Status de softwares e e-mails (dois estados).
const (
	StatusAtivo = "Ativo"
)

// StatusPatrimonioValido informa se s é um status reconhecido para ativos/celulares.
func StatusPatrimonioValido(s string) bool {
	switch s {
	case StatusEmUso, StatusReserva, StatusManutencao, StatusInativo:
		return true
	}
	return false
}

// StatusLicencaValido informa se s é um status reconhecido para softwares/e-mails.
func StatusLicencaValido(s string) bool {
	return s == StatusAtivo || s == StatusInativo
}
