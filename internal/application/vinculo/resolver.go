// Package vinculo resolve a referência polimórfica (id + tag de tipo) de
// contas de e-mail para o registro pai concreto, antes de qualquer mutação.
package vinculo

import (
	"context"
	"fmt"

	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// Resolver consulta os repositórios de ativos e celulares para materializar
// um VinculoPai. A resolução é somente leitura e falha rápido: pai ausente
// é ErrNaoEncontrado, nunca um vínculo pendurado.
type Resolver struct {
	ativos    repository.AtivoRepository
	celulares repository.CelularRepository
}

// NewResolver constrói o resolver.
func NewResolver(ativos repository.AtivoRepository, celulares repository.CelularRepository) *Resolver {
	return &Resolver{ativos: ativos, celulares: celulares}
}

// PorID resolve (tipo, id) no pai concreto. Tag desconhecida é erro de
// validação, não um nulo silencioso.
func (r *Resolver) PorID(ctx context.Context, tipo, id string) (*entity.VinculoPai, error) {
	switch tipo {
	case entity.VinculoWorkstation:
		a, err := r.ativos.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, fmt.Errorf("ativo %s: %w", id, domain.ErrNaoEncontrado)
		}
		return &entity.VinculoPai{Tipo: tipo, ID: a.ID, Patrimonio: a.Patrimonio}, nil
	case entity.VinculoCelular:
		c, err := r.celulares.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("celular %s: %w", id, domain.ErrNaoEncontrado)
		}
		return &entity.VinculoPai{Tipo: tipo, ID: c.ID, Patrimonio: c.Patrimonio}, nil
	}
	return nil, fmt.Errorf("tipo de vínculo %q não reconhecido: %w", tipo, domain.ErrValidacao)
}

// PorPatrimonio resolve (tipo, patrimônio) no pai concreto. Usado pela
// importação, cujas linhas referenciam o pai pela chave natural.
func (r *Resolver) PorPatrimonio(ctx context.Context, tipo, patrimonio string) (*entity.VinculoPai, error) {
	switch tipo {
	case entity.VinculoWorkstation:
		a, err := r.ativos.GetByPatrimonio(ctx, patrimonio)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, fmt.Errorf("ativo %q: %w", patrimonio, domain.ErrNaoEncontrado)
		}
		return &entity.VinculoPai{Tipo: tipo, ID: a.ID, Patrimonio: a.Patrimonio}, nil
	case entity.VinculoCelular:
		c, err := r.celulares.GetByPatrimonio(ctx, patrimonio)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("celular %q: %w", patrimonio, domain.ErrNaoEncontrado)
		}
		return &entity.VinculoPai{Tipo: tipo, ID: c.ID, Patrimonio: c.Patrimonio}, nil
	}
	return nil, fmt.Errorf("tipo de vínculo %q não reconhecido: %w", tipo, domain.ErrValidacao)
}
