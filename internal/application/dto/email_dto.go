package dto

import "time"

// CreateEmailRequest dados para cadastrar uma conta de e-mail. O vínculo
// polimórfico chega como par (asset_id, asset_type) e é resolvido antes de
// qualquer gravação.
type CreateEmailRequest struct {
	Endereco    string `json:"endereco"`
	Tipo        string `json:"tipo"` // google, zimbra, microsoft
	AssetID     string `json:"asset_id"`
	AssetType   string `json:"asset_type"` // workstation, celular
	Usuario     string `json:"usuario"`
	Senha       string `json:"senha"`
	Recuperacao string `json:"recuperacao"`
	Observacoes string `json:"observacoes"`
}

// UpdateEmailRequest atualização parcial. AssetID e AssetType devem vir
// juntos quando o vínculo muda.
type UpdateEmailRequest struct {
	Endereco    *string `json:"endereco"`
	Tipo        *string `json:"tipo"`
	AssetID     *string `json:"asset_id"`
	AssetType   *string `json:"asset_type"`
	Usuario     *string `json:"usuario"`
	Senha       *string `json:"senha"`
	Recuperacao *string `json:"recuperacao"`
	Observacoes *string `json:"observacoes"`
	Status      *string `json:"status"`
}

// EmailResponse representação HTTP de um Email. A senha só sai quando
// solicitada explicitamente pelo chamador autorizado.
type EmailResponse struct {
	ID              string    `json:"id"`
	Endereco        string    `json:"endereco"`
	Tipo            string    `json:"tipo"`
	AssetID         string    `json:"asset_id"`
	AssetType       string    `json:"asset_type"`
	AssetPatrimonio string    `json:"asset_patrimonio"`
	Usuario         string    `json:"usuario"`
	Senha           string    `json:"senha,omitempty"`
	Recuperacao     string    `json:"recuperacao"`
	Observacoes     string    `json:"observacoes"`
	Status          string    `json:"status"`
	CriadoEm        time.Time `json:"criado_em"`
	AtualizadoEm    time.Time `json:"atualizado_em"`
}
