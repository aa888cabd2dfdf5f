package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refricriltecno/inventario-ti/internal/application/lifecycle"
	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

func TestPadrao(t *testing.T) {
	assert.Equal(t, entity.StatusEmUso, lifecycle.Patrimonios.Padrao())
	assert.Equal(t, entity.StatusAtivo, lifecycle.Licencas.Padrao())
}

func TestValido(t *testing.T) {
	assert.True(t, lifecycle.Patrimonios.Valido(entity.StatusManutencao))
	assert.True(t, lifecycle.Patrimonios.Valido(entity.StatusInativo))
	assert.False(t, lifecycle.Patrimonios.Valido("Emprestado"))

	// Reserva e Manutenção só existem na máquina de patrimônios.
	assert.False(t, lifecycle.Licencas.Valido(entity.StatusReserva))
	assert.True(t, lifecycle.Licencas.Valido(entity.StatusAtivo))
}

func TestSoftDelete(t *testing.T) {
	status, err := lifecycle.Patrimonios.SoftDelete(entity.StatusEmUso)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInativo, status)

	// Inativar de novo é conflito, não no-op.
	_, err = lifecycle.Patrimonios.SoftDelete(entity.StatusInativo)
	assert.ErrorIs(t, err, domain.ErrConflito)
}

func TestHardDeleteExigeAdmin(t *testing.T) {
	editor := entity.Ator{ID: "u-1", Nome: "maria", Permissoes: []string{"view", "edit", "delete"}}
	err := lifecycle.Patrimonios.HardDelete(editor)
	assert.ErrorIs(t, err, domain.ErrPermissaoNegada)

	admin := entity.Ator{ID: "u-2", Nome: "root", Permissoes: []string{"admin"}}
	assert.NoError(t, lifecycle.Patrimonios.HardDelete(admin))
}

func TestDefinir(t *testing.T) {
	// Reativação: Inativo -> qualquer status válido da máquina.
	status, err := lifecycle.Patrimonios.Definir(entity.StatusReserva)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReserva, status)

	_, err = lifecycle.Licencas.Definir("Pendente")
	assert.ErrorIs(t, err, domain.ErrValidacao)
}
