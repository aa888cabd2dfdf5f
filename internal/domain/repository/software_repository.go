package repository

import (
	"context"
	"time"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// FiltroSoftware filtros de listagem de softwares/licenças.
type FiltroSoftware struct {
	AssetID         string
	IncluirInativos bool
}

// SoftwareRepository define o porto de persistência para Software.
type SoftwareRepository interface {
	Create(ctx context.Context, s *entity.Software) error
	GetByID(ctx context.Context, id string) (*entity.Software, error)
	GetByNomeAndAsset(ctx context.Context, nome, assetID string) (*entity.Software, error)
	Update(ctx context.Context, s *entity.Software) error
	List(ctx context.Context, filtro FiltroSoftware) ([]*entity.Software, error)
	Delete(ctx context.Context, id string) error
	// ListVencendo retorna licenças ativas com vencimento entre agora e o limite.
	ListVencendo(ctx context.Context, ate time.Time) ([]*entity.Software, error)
}
