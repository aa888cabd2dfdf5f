package vinculo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refricriltecno/inventario-ti/internal/application/vinculo"
	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes: somente os métodos de leitura que o resolver usa.
// ─────────────────────────────────────────────────────────────────────────────

type fakeAtivos struct {
	repository.AtivoRepository
	porID         map[string]*entity.Ativo
	porPatrimonio map[string]*entity.Ativo
}

func (f *fakeAtivos) GetByID(_ context.Context, id string) (*entity.Ativo, error) {
	return f.porID[id], nil
}

func (f *fakeAtivos) GetByPatrimonio(_ context.Context, pat string) (*entity.Ativo, error) {
	return f.porPatrimonio[pat], nil
}

type fakeCelulares struct {
	repository.CelularRepository
	porID         map[string]*entity.Celular
	porPatrimonio map[string]*entity.Celular
}

func (f *fakeCelulares) GetByID(_ context.Context, id string) (*entity.Celular, error) {
	return f.porID[id], nil
}

func (f *fakeCelulares) GetByPatrimonio(_ context.Context, pat string) (*entity.Celular, error) {
	return f.porPatrimonio[pat], nil
}

func novoResolver() *vinculo.Resolver {
	pc := &entity.Ativo{ID: "a-1", Patrimonio: "PAT-001"}
	cel := &entity.Celular{ID: "c-1", Patrimonio: "CEL-010"}
	return vinculo.NewResolver(
		&fakeAtivos{
			porID:         map[string]*entity.Ativo{"a-1": pc},
			porPatrimonio: map[string]*entity.Ativo{"PAT-001": pc},
		},
		&fakeCelulares{
			porID:         map[string]*entity.Celular{"c-1": cel},
			porPatrimonio: map[string]*entity.Celular{"CEL-010": cel},
		},
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Testes
// ─────────────────────────────────────────────────────────────────────────────

func TestPorIDWorkstation(t *testing.T) {
	r := novoResolver()

	pai, err := r.PorID(context.Background(), entity.VinculoWorkstation, "a-1")
	require.NoError(t, err)
	assert.Equal(t, entity.VinculoWorkstation, pai.Tipo)
	assert.Equal(t, "a-1", pai.ID)
	assert.Equal(t, "PAT-001", pai.Patrimonio)
}

func TestPorIDCelular(t *testing.T) {
	r := novoResolver()

	pai, err := r.PorID(context.Background(), entity.VinculoCelular, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "CEL-010", pai.Patrimonio)
}

func TestPorIDPaiAusente(t *testing.T) {
	r := novoResolver()

	// Pai inexistente falha rápido: nunca um vínculo pendurado.
	pai, err := r.PorID(context.Background(), entity.VinculoWorkstation, "a-999")
	assert.Nil(t, pai)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestPorIDTipoDesconhecido(t *testing.T) {
	r := novoResolver()

	pai, err := r.PorID(context.Background(), "impressora", "a-1")
	assert.Nil(t, pai)
	assert.ErrorIs(t, err, domain.ErrValidacao)
}

func TestPorPatrimonio(t *testing.T) {
	r := novoResolver()

	pai, err := r.PorPatrimonio(context.Background(), entity.VinculoCelular, "CEL-010")
	require.NoError(t, err)
	assert.Equal(t, "c-1", pai.ID)

	_, err = r.PorPatrimonio(context.Background(), entity.VinculoWorkstation, "PAT-404")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
