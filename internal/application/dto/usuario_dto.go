package dto

import "time"

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Usuario     UsuarioResponse `json:"usuario"`
}

// RegisterRequest dados para registrar um novo usuário.
type RegisterRequest struct {
	Username   string   `json:"username"`
	Password   string   `json:"password"`
	Nome       string   `json:"nome"`
	Email      string   `json:"email"`
	Filial     string   `json:"filial"`
	Permissoes []string `json:"permissoes"`
}

// UpdateUsuarioRequest atualização parcial de usuário (admin).
type UpdateUsuarioRequest struct {
	Nome       *string   `json:"nome"`
	Email      *string   `json:"email"`
	Filial     *string   `json:"filial"`
	Permissoes *[]string `json:"permissoes"`
	Ativo      *bool     `json:"ativo"`
}

// UsuarioResponse representação HTTP de um Usuario (sem hash de senha).
type UsuarioResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Nome        string     `json:"nome"`
	Email       string     `json:"email"`
	Filial      string     `json:"filial"`
	Permissoes  []string   `json:"permissoes"`
	Ativo       bool       `json:"ativo"`
	UltimoLogin *time.Time `json:"ultimo_login,omitempty"`
}
