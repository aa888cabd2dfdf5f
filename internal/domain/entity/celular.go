package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Celular representa um aparelho corporativo. Patrimônio único; IMEI único quando informado.
type Celular struct {
	ID           string
	Patrimonio   string
	Filial       string
	Modelo       string
	IMEI         string
	Numero       string
	Operadora    string
	Responsavel  string
	Status       string
	Observacoes  string
	DtCompra     *time.Time
	Valor        decimal.Decimal
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
