// Package importer implementa a reconciliação de lotes CSV: cada linha é
// validada e aplicada de forma independente, pelo mesmo caminho de mutação
// das edições interativas — a auditoria dispara igual. Linha ruim vira item
// de erro no relatório; o lote nunca aborta.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Linha é uma linha do CSV já normalizada: cabeçalhos em minúsculas e sem
// espaços, valores aparados.
type Linha struct {
	Numero int // número da linha no arquivo (cabeçalho = 1)
	campos map[string]string
}

// Get devolve o valor de uma coluna (cabeçalho normalizado).
func (l Linha) Get(coluna string) string {
	return l.campos[coluna]
}

// Lookup devolve o valor e se a coluna existe no arquivo. Coluna ausente é
// diferente de coluna vazia: ausente preserva o valor atual no upsert.
func (l Linha) Lookup(coluna string) (string, bool) {
	v, ok := l.campos[coluna]
	return v, ok
}

// GetQualquer devolve o primeiro valor não vazio entre as colunas dadas
// (planilhas legadas variam o nome da coluna).
func (l Linha) GetQualquer(colunas ...string) string {
	for _, c := range colunas {
		if v := l.campos[c]; v != "" {
			return v
		}
	}
	return ""
}

// FlagSim interpreta colunas booleanas do CSV legado (Sim/S/1/true/Ativo).
func FlagSim(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "sim", "s", "1", "true", "ativo":
		return true
	}
	return false
}

// EnderecoValido validação mínima de e-mail, igual à do sistema legado.
func EnderecoValido(v string) bool {
	return v != "" && strings.Contains(v, "@") && strings.Contains(v, ".")
}

// LerLinhas lê o CSV inteiro: decodifica ISO-8859-1 quando o conteúdo não é
// UTF-8 válido (exportações de ferramentas Windows), detecta o delimitador
// pela primeira linha (';' tem precedência sobre ',') e normaliza cabeçalhos.
func LerLinhas(r io.Reader) ([]Linha, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ler arquivo: %w", err)
	}
	if !utf8.Valid(raw) {
		raw, err = io.ReadAll(transform.NewReader(strings.NewReader(string(raw)), charmap.ISO8859_1.NewDecoder()))
		if err != nil {
			return nil, fmt.Errorf("decodificar ISO-8859-1: %w", err)
		}
	}
	conteudo := strings.TrimPrefix(string(raw), "\uFEFF")

	primeira, _, _ := strings.Cut(conteudo, "\n")
	delimitador := ','
	if strings.Contains(primeira, ";") {
		delimitador = ';'
	}

	leitor := csv.NewReader(strings.NewReader(conteudo))
	leitor.Comma = delimitador
	leitor.FieldsPerRecord = -1
	leitor.LazyQuotes = true

	cabecalho, err := leitor.Read()
	if err != nil {
		return nil, fmt.Errorf("ler cabeçalho: %w", err)
	}
	colunas := make([]string, len(cabecalho))
	for i, c := range cabecalho {
		colunas[i] = strings.ToLower(strings.TrimSpace(c))
	}

	var linhas []Linha
	numero := 1
	for {
		registro, err := leitor.Read()
		numero++
		if err == io.EOF {
			break
		}
		if err != nil {
			// Linha mal formada não derruba o arquivo: vira linha vazia e o
			// importador específico reporta o erro com o número certo.
			linhas = append(linhas, Linha{Numero: numero, campos: map[string]string{}})
			continue
		}
		campos := make(map[string]string, len(colunas))
		for i, valor := range registro {
			if i >= len(colunas) || colunas[i] == "" {
				continue
			}
			campos[colunas[i]] = strings.TrimSpace(valor)
		}
		linhas = append(linhas, Linha{Numero: numero, campos: campos})
	}
	return linhas, nil
}
