package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Software representa uma licença instalada em exatamente um Ativo (AssetID).
type Software struct {
	ID                   string
	Nome                 string
	Versao               string
	AssetID              string // Ativo dono da licença
	AssetPatrimonio      string // desnormalizado para exibição
	TipoLicenca          string // Individual, Volume, OEM...
	ChaveLicenca         string
	DtInstalacao         *time.Time
	DtVencimento         *time.Time
	CustoAnual           decimal.Decimal
	RenovacaoAutomatica  bool
	Observacoes          string
	Status               string // Ativo, Inativo
	CriadoEm             time.Time
	AtualizadoEm         time.Time
}
