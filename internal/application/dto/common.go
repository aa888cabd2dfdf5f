package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MsgResponse corpo de sucesso com mensagem e id opcional (contrato legado).
type MsgResponse struct {
	Msg string `json:"msg"`
	ID  string `json:"id,omitempty"`
}
