package repository

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// FiltroPatrimonio filtros de listagem para ativos e celulares.
// Por padrão registros Inativos ficam fora; IncluirInativos abre o escopo.
type FiltroPatrimonio struct {
	Filial          string
	Status          string
	IncluirInativos bool
}

// AtivoRepository define o porto de persistência para Ativo (estações de trabalho).
type AtivoRepository interface {
	Create(ctx context.Context, a *entity.Ativo) error
	GetByID(ctx context.Context, id string) (*entity.Ativo, error)
	GetByPatrimonio(ctx context.Context, patrimonio string) (*entity.Ativo, error)
	Update(ctx context.Context, a *entity.Ativo) error
	List(ctx context.Context, filtro FiltroPatrimonio) ([]*entity.Ativo, error)
	Delete(ctx context.Context, id string) error
	CountByFilial(ctx context.Context, filial string) (int, error)
	ListResponsaveis(ctx context.Context, filial string) ([]string, error)
}
