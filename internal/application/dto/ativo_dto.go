package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAtivoRequest dados para cadastrar uma estação de trabalho.
type CreateAtivoRequest struct {
	Patrimonio  string `json:"patrimonio"`
	Tipo        string `json:"tipo"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	NumeroSerie string `json:"numero_serie"`
	Filial      string `json:"filial"`
	Setor       string `json:"setor"`
	Responsavel string `json:"responsavel"`
	Status      string `json:"status"`
	SenhaBios   string `json:"senha_bios"`
	SenhaOS     string `json:"senha_os"`
	SenhaVPN    string `json:"senha_vpn"`
	Observacoes string `json:"observacoes"`
	DtCompra    string `json:"dt_compra"`
	DtGarantia  string `json:"dt_garantia"`
	Valor       string `json:"valor"`
	Fornecedor  string `json:"fornecedor"`
	NotaFiscal  string `json:"nota_fiscal"`
	Anydesk     string `json:"anydesk"`
}

// UpdateAtivoRequest atualização parcial: campos nil não são tocados e não
// geram entradas de auditoria.
type UpdateAtivoRequest struct {
	Tipo        *string `json:"tipo"`
	Marca       *string `json:"marca"`
	Modelo      *string `json:"modelo"`
	NumeroSerie *string `json:"numero_serie"`
	Filial      *string `json:"filial"`
	Setor       *string `json:"setor"`
	Responsavel *string `json:"responsavel"`
	Status      *string `json:"status"`
	SenhaBios   *string `json:"senha_bios"`
	SenhaOS     *string `json:"senha_os"`
	SenhaVPN    *string `json:"senha_vpn"`
	Observacoes *string `json:"observacoes"`
	DtCompra    *string `json:"dt_compra"`
	DtGarantia  *string `json:"dt_garantia"`
	Valor       *string `json:"valor"`
	Fornecedor  *string `json:"fornecedor"`
	NotaFiscal  *string `json:"nota_fiscal"`
	Anydesk     *string `json:"anydesk"`
}

// AtivoResponse representação HTTP de um Ativo.
type AtivoResponse struct {
	ID           string          `json:"id"`
	Patrimonio   string          `json:"patrimonio"`
	Tipo         string          `json:"tipo"`
	Marca        string          `json:"marca"`
	Modelo       string          `json:"modelo"`
	NumeroSerie  string          `json:"numero_serie"`
	Filial       string          `json:"filial"`
	Setor        string          `json:"setor"`
	Responsavel  string          `json:"responsavel"`
	Status       string          `json:"status"`
	Observacoes  string          `json:"observacoes"`
	DtCompra     *time.Time      `json:"dt_compra"`
	DtGarantia   *time.Time      `json:"dt_garantia"`
	Valor        decimal.Decimal `json:"valor"`
	Fornecedor   string          `json:"fornecedor"`
	NotaFiscal   string          `json:"nota_fiscal"`
	Anydesk      string          `json:"anydesk"`
	CriadoEm     time.Time       `json:"criado_em"`
	AtualizadoEm time.Time       `json:"atualizado_em"`
}

// VincularSoftwaresRequest conjunto desejado de softwares de um ativo
// (operação de lote: gera ADICAO/REMOCAO no log).
type VincularSoftwaresRequest struct {
	Softwares []string `json:"softwares"`
}
