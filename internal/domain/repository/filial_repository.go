package repository

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// FilialRepository define o porto de persistência para Filial.
type FilialRepository interface {
	Create(ctx context.Context, f *entity.Filial) error
	GetByID(ctx context.Context, id string) (*entity.Filial, error)
	GetByNome(ctx context.Context, nome string) (*entity.Filial, error)
	Update(ctx context.Context, f *entity.Filial) error
	List(ctx context.Context) ([]*entity.Filial, error)
	Delete(ctx context.Context, id string) error
}
