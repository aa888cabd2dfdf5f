package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/domain"
)

func TestParseData(t *testing.T) {
	esperado := time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)

	for _, s := range []string{"2023-05-10", "10/05/2023", "2023/05/10"} {
		d, err := usecase.ParseData(s)
		require.NoError(t, err, s)
		require.NotNil(t, d, s)
		assert.True(t, d.Equal(esperado), s)
	}
}

func TestParseDataVaziaDevolveNil(t *testing.T) {
	d, err := usecase.ParseData("  ")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestParseDataTimestampISO(t *testing.T) {
	// Frontends mandam o timestamp completo; só a data interessa.
	d, err := usecase.ParseData("2023-05-10T14:30:00Z")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2023-05-10", d.Format("2006-01-02"))
}

func TestParseDataInvalida(t *testing.T) {
	_, err := usecase.ParseData("10-05-23")
	assert.ErrorIs(t, err, domain.ErrValidacao)
}

func TestParseValor(t *testing.T) {
	casos := map[string]string{
		"1234.56":  "1234.56",
		"1.234,56": "1234.56",
		"1234,56":  "1234.56",
		"4500":     "4500",
	}
	for entrada, esperado := range casos {
		v, err := usecase.ParseValor(entrada)
		require.NoError(t, err, entrada)
		assert.Equal(t, esperado, v.String(), entrada)
	}
}

func TestParseValorVazioDevolveZero(t *testing.T) {
	v, err := usecase.ParseValor("")
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

func TestParseValorInvalido(t *testing.T) {
	_, err := usecase.ParseValor("R$ abc")
	assert.ErrorIs(t, err, domain.ErrValidacao)
}
