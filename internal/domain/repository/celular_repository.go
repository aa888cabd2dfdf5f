package repository

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// CelularRepository define o porto de persistência para Celular.
type CelularRepository interface {
	Create(ctx context.Context, c *entity.Celular) error
	GetByID(ctx context.Context, id string) (*entity.Celular, error)
	GetByPatrimonio(ctx context.Context, patrimonio string) (*entity.Celular, error)
	Update(ctx context.Context, c *entity.Celular) error
	List(ctx context.Context, filtro FiltroPatrimonio) ([]*entity.Celular, error)
	Delete(ctx context.Context, id string) error
	CountByFilial(ctx context.Context, filial string) (int, error)
	ListResponsaveis(ctx context.Context, filial string) ([]string, error)
}
