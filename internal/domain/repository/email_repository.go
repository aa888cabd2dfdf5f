package repository

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// FiltroEmail filtros de listagem de contas de e-mail.
type FiltroEmail struct {
	VinculoID       string
	Tipo            string
	IncluirInativos bool
}

// EmailRepository define o porto de persistência para Email.
type EmailRepository interface {
	Create(ctx context.Context, e *entity.Email) error
	GetByID(ctx context.Context, id string) (*entity.Email, error)
	GetByEnderecoTipo(ctx context.Context, endereco, tipo string) (*entity.Email, error)
	Update(ctx context.Context, e *entity.Email) error
	List(ctx context.Context, filtro FiltroEmail) ([]*entity.Email, error)
	Delete(ctx context.Context, id string) error
}
