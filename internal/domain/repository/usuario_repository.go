package repository

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
	List(ctx context.Context) ([]*entity.Usuario, error)
	ListByFilial(ctx context.Context, filial string) ([]*entity.Usuario, error)
	Delete(ctx context.Context, id string) error
}
