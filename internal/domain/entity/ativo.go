package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ativo representa uma estação de trabalho (desktop/notebook) inventariada.
// O patrimônio é a chave natural; a filial é referenciada pelo nome.
type Ativo struct {
	ID          string
	Patrimonio  string // único
	Tipo        string // Desktop, Notebook, Servidor...
	Marca       string
	Modelo      string
	NumeroSerie string
	Filial      string
	Setor       string
	Responsavel string
	Status      string // Em Uso, Reserva, Manutenção, Inativo

	// Credenciais da máquina: strings opacas; o domínio não cifra,
	// apenas transporta. Entram no diff de auditoria como qualquer campo.
	SenhaBios string
	SenhaOS   string
	SenhaVPN  string

	Observacoes string
	DtCompra    *time.Time
	DtGarantia  *time.Time
	Valor       decimal.Decimal
	Fornecedor  string
	NotaFiscal  string
	Anydesk     string

	CriadoEm     time.Time
	AtualizadoEm time.Time
}
