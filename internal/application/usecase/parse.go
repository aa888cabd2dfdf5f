package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/refricriltecno/inventario-ti/internal/domain"
)

// formatos de data aceitos nos payloads e no CSV legado.
var formatosData = []string{"2006-01-02", "02/01/2006", "2006/01/02"}

// ParseData interpreta uma data nos formatos aceitos. Vazio devolve nil.
func ParseData(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, f := range formatosData {
		if t, err := time.Parse(f, s); err == nil {
			return &t, nil
		}
	}
	// ISO com hora (payloads de frontend mandam timestamp completo)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d := t.Truncate(24 * time.Hour)
		return &d, nil
	}
	return nil, fmt.Errorf("data %q inválida: %w", s, domain.ErrValidacao)
}

// ParseValor interpreta um valor monetário. Aceita vírgula decimal
// ("1.234,56") e ponto; vazio devolve zero.
func ParseValor(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor %q inválido: %w", s, domain.ErrValidacao)
	}
	return d, nil
}
