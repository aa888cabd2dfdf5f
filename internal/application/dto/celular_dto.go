package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCelularRequest dados para cadastrar um celular corporativo.
type CreateCelularRequest struct {
	Patrimonio  string `json:"patrimonio"`
	Filial      string `json:"filial"`
	Modelo      string `json:"modelo"`
	IMEI        string `json:"imei"`
	Numero      string `json:"numero"`
	Operadora   string `json:"operadora"`
	Responsavel string `json:"responsavel"`
	Status      string `json:"status"`
	Observacoes string `json:"observacoes"`
	DtCompra    string `json:"dt_compra"`
	Valor       string `json:"valor"`
}

// UpdateCelularRequest atualização parcial.
type UpdateCelularRequest struct {
	Filial      *string `json:"filial"`
	Modelo      *string `json:"modelo"`
	IMEI        *string `json:"imei"`
	Numero      *string `json:"numero"`
	Operadora   *string `json:"operadora"`
	Responsavel *string `json:"responsavel"`
	Status      *string `json:"status"`
	Observacoes *string `json:"observacoes"`
	DtCompra    *string `json:"dt_compra"`
	Valor       *string `json:"valor"`
}

// CelularResponse representação HTTP de um Celular.
type CelularResponse struct {
	ID           string          `json:"id"`
	Patrimonio   string          `json:"patrimonio"`
	Filial       string          `json:"filial"`
	Modelo       string          `json:"modelo"`
	IMEI         string          `json:"imei"`
	Numero       string          `json:"numero"`
	Operadora    string          `json:"operadora"`
	Responsavel  string          `json:"responsavel"`
	Status       string          `json:"status"`
	Observacoes  string          `json:"observacoes"`
	DtCompra     *time.Time      `json:"dt_compra"`
	Valor        decimal.Decimal `json:"valor"`
	CriadoEm     time.Time       `json:"criado_em"`
	AtualizadoEm time.Time       `json:"atualizado_em"`
}
