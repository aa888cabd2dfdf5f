package changefeed_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
)

func TestFeedComecaEmZero(t *testing.T) {
	feed := changefeed.New()
	assert.Equal(t, uint64(0), feed.Versao(changefeed.ColecaoAtivos))

	versoes := feed.Versoes()
	assert.Len(t, versoes, 6)
	for colecao, v := range versoes {
		assert.Zero(t, v, colecao)
	}
}

func TestBumpIncrementaSomenteAColecao(t *testing.T) {
	feed := changefeed.New()

	assert.Equal(t, uint64(1), feed.Bump(changefeed.ColecaoAtivos))
	assert.Equal(t, uint64(2), feed.Bump(changefeed.ColecaoAtivos))
	assert.Equal(t, uint64(1), feed.Bump(changefeed.ColecaoEmails))

	assert.Equal(t, uint64(2), feed.Versao(changefeed.ColecaoAtivos))
	assert.Equal(t, uint64(1), feed.Versao(changefeed.ColecaoEmails))
	assert.Equal(t, uint64(0), feed.Versao(changefeed.ColecaoCelulares))
}

func TestVersoesDevolveCopia(t *testing.T) {
	feed := changefeed.New()
	versoes := feed.Versoes()
	versoes[changefeed.ColecaoAtivos] = 99

	assert.Equal(t, uint64(0), feed.Versao(changefeed.ColecaoAtivos))
}

func TestBumpConcorrente(t *testing.T) {
	feed := changefeed.New()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			feed.Bump(changefeed.ColecaoSoftwares)
		}()
	}
	wg.Wait()

	// Monotônico: nenhum incremento se perde.
	assert.Equal(t, uint64(n), feed.Versao(changefeed.ColecaoSoftwares))
}
