package dto

// ImportReport resultado de um lote de importação CSV. Linhas com erro não
// abortam o lote: são colecionadas em Erros e o restante é processado.
type ImportReport struct {
	Msg   string   `json:"msg"`
	Erros []string `json:"erros"`
}
