// Package changefeed mantém uma versão monotônica por coleção, incrementada
// a cada mutação confirmada. Clientes comparam versões em vez de re-buscar
// listas inteiras em intervalo fixo.
package changefeed

import "sync"

// Coleções versionadas.
const (
	ColecaoAtivos    = "ativos"
	ColecaoCelulares = "celulares"
	ColecaoSoftwares = "softwares"
	ColecaoEmails    = "emails"
	ColecaoFiliais   = "filiais"
	ColecaoUsuarios  = "usuarios"
)

// Feed guarda a versão corrente de cada coleção. Seguro para uso concorrente.
type Feed struct {
	mu      sync.RWMutex
	versoes map[string]uint64
}

// New constrói o feed com todas as coleções na versão zero.
func New() *Feed {
	return &Feed{versoes: map[string]uint64{
		ColecaoAtivos:    0,
		ColecaoCelulares: 0,
		ColecaoSoftwares: 0,
		ColecaoEmails:    0,
		ColecaoFiliais:   0,
		ColecaoUsuarios:  0,
	}}
}

// Bump incrementa a versão da coleção e devolve o novo valor.
// Deve ser chamado somente após o commit da mutação.
func (f *Feed) Bump(colecao string) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.versoes[colecao]++
	return f.versoes[colecao]
}

// Versao devolve a versão corrente de uma coleção.
func (f *Feed) Versao(colecao string) uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.versoes[colecao]
}

// Versoes devolve uma cópia do mapa coleção -> versão.
func (f *Feed) Versoes() map[string]uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	copia := make(map[string]uint64, len(f.versoes))
	for k, v := range f.versoes {
		copia[k] = v
	}
	return copia
}
