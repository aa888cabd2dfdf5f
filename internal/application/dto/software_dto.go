package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSoftwareRequest dados para cadastrar uma licença de software.
type CreateSoftwareRequest struct {
	Nome                string `json:"nome"`
	Versao              string `json:"versao"`
	AssetID             string `json:"asset_id"`
	TipoLicenca         string `json:"tipo_licenca"`
	ChaveLicenca        string `json:"chave_licenca"`
	DtInstalacao        string `json:"dt_instalacao"`
	DtVencimento        string `json:"dt_vencimento"`
	CustoAnual          string `json:"custo_anual"`
	RenovacaoAutomatica bool   `json:"renovacao_automatica"`
	Observacoes         string `json:"observacoes"`
}

// UpdateSoftwareRequest atualização parcial.
type UpdateSoftwareRequest struct {
	Nome                *string `json:"nome"`
	Versao              *string `json:"versao"`
	AssetID             *string `json:"asset_id"`
	TipoLicenca         *string `json:"tipo_licenca"`
	ChaveLicenca        *string `json:"chave_licenca"`
	DtInstalacao        *string `json:"dt_instalacao"`
	DtVencimento        *string `json:"dt_vencimento"`
	CustoAnual          *string `json:"custo_anual"`
	RenovacaoAutomatica *bool   `json:"renovacao_automatica"`
	Observacoes         *string `json:"observacoes"`
	Status              *string `json:"status"`
}

// SoftwareResponse representação HTTP de um Software.
type SoftwareResponse struct {
	ID                  string          `json:"id"`
	Nome                string          `json:"nome"`
	Versao              string          `json:"versao"`
	AssetID             string          `json:"asset_id"`
	AssetPatrimonio     string          `json:"asset_patrimonio"`
	TipoLicenca         string          `json:"tipo_licenca"`
	ChaveLicenca        string          `json:"chave_licenca"`
	DtInstalacao        *time.Time      `json:"dt_instalacao"`
	DtVencimento        *time.Time      `json:"dt_vencimento"`
	CustoAnual          decimal.Decimal `json:"custo_anual"`
	RenovacaoAutomatica bool            `json:"renovacao_automatica"`
	Observacoes         string          `json:"observacoes"`
	Status              string          `json:"status"`
	CriadoEm            time.Time       `json:"criado_em"`
	AtualizadoEm        time.Time       `json:"atualizado_em"`
}
