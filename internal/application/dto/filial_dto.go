package dto

import "time"

// CreateFilialRequest dados para cadastrar uma filial.
type CreateFilialRequest struct {
	Nome     string `json:"nome"`
	Tipo     string `json:"tipo"` // Administrativo, Loja, CD
	Endereco string `json:"endereco"`
	Cidade   string `json:"cidade"`
	Estado   string `json:"estado"`
	Telefone string `json:"telefone"`
}

// UpdateFilialRequest atualização parcial. O nome é a chave de referência
// dos patrimônios; renomear não realoca as referências existentes.
type UpdateFilialRequest struct {
	Nome     *string `json:"nome"`
	Tipo     *string `json:"tipo"`
	Endereco *string `json:"endereco"`
	Cidade   *string `json:"cidade"`
	Estado   *string `json:"estado"`
	Telefone *string `json:"telefone"`
	Ativo    *bool   `json:"ativo"`
}

// FilialResponse representação HTTP de uma Filial.
type FilialResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Tipo         string    `json:"tipo"`
	Endereco     string    `json:"endereco"`
	Cidade       string    `json:"cidade"`
	Estado       string    `json:"estado"`
	Telefone     string    `json:"telefone"`
	Ativo        bool      `json:"ativo"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}
