package dto

import "time"

// AuditLogResponse representação HTTP de uma entrada de auditoria.
type AuditLogResponse struct {
	ID               string    `json:"id"`
	Entidade         string    `json:"entidade"`
	EntidadeID       string    `json:"entidade_id"`
	Acao             string    `json:"acao"`
	Campo            string    `json:"campo,omitempty"`
	ValorAnterior    string    `json:"valor_anterior,omitempty"`
	ValorNovo        string    `json:"valor_novo,omitempty"`
	ItensAdicionados []string  `json:"itens_adicionados,omitempty"`
	ItensRemovidos   []string  `json:"itens_removidos,omitempty"`
	CamposAlterados  []string  `json:"campos_alterados,omitempty"`
	Usuario          string    `json:"usuario"`
	Detalhes         string    `json:"detalhes,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// LogEstatisticasResponse agregados do trilho de auditoria.
type LogEstatisticasResponse struct {
	TotalLogs   int            `json:"total_logs"`
	Usuarios    []string       `json:"usuarios"`
	Acoes       []string       `json:"acoes"`
	LogsPorAcao map[string]int `json:"logs_por_acao"`
}
