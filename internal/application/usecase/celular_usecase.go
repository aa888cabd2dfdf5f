package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/refricriltecno/inventario-ti/internal/application/audit"
	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/lifecycle"
	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// CelularUseCase casos de uso de celulares corporativos.
type CelularUseCase struct {
	repo repository.CelularRepository
	tx   TxRunner
	feed *changefeed.Feed
}

// NewCelularUseCase constrói o caso de uso.
func NewCelularUseCase(repo repository.CelularRepository, tx TxRunner, feed *changefeed.Feed) *CelularUseCase {
	return &CelularUseCase{repo: repo, tx: tx, feed: feed}
}

// Create cadastra um celular. Patrimônio e filial são obrigatórios.
func (uc *CelularUseCase) Create(ctx context.Context, in dto.CreateCelularRequest, ator entity.Ator) (*dto.CelularResponse, error) {
	if in.Patrimonio == "" || in.Filial == "" {
		return nil, fmt.Errorf("patrimonio e filial são obrigatórios: %w", domain.ErrValidacao)
	}
	existente, err := uc.repo.GetByPatrimonio(ctx, in.Patrimonio)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("patrimônio %s já cadastrado: %w", in.Patrimonio, domain.ErrDuplicado)
	}

	status := in.Status
	if status == "" {
		status = lifecycle.Patrimonios.Padrao()
	}
	status, err = lifecycle.Patrimonios.Definir(status)
	if err != nil {
		return nil, err
	}
	dtCompra, err := ParseData(in.DtCompra)
	if err != nil {
		return nil, err
	}
	valor, err := ParseValor(in.Valor)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	c := &entity.Celular{
		ID:           uuid.New().String(),
		Patrimonio:   in.Patrimonio,
		Filial:       in.Filial,
		Modelo:       in.Modelo,
		IMEI:         in.IMEI,
		Numero:       in.Numero,
		Operadora:    in.Operadora,
		Responsavel:  in.Responsavel,
		Status:       status,
		Observacoes:  in.Observacoes,
		DtCompra:     dtCompra,
		Valor:        valor,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}

	entradas := audit.CapturarCriacao(entity.EntidadeCelular, c.ID, c.Patrimonio, audit.SnapshotCelular(c), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Celulares.Create(ctx, c); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoCelulares)
	return toCelularResponse(c), nil
}

// GetByID busca um celular por ID.
func (uc *CelularUseCase) GetByID(ctx context.Context, id string) (*dto.CelularResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("celular %s: %w", id, domain.ErrNaoEncontrado)
	}
	return toCelularResponse(c), nil
}

// List lista celulares pelo filtro; escopo padrão exclui Inativos.
func (uc *CelularUseCase) List(ctx context.Context, filtro repository.FiltroPatrimonio) ([]dto.CelularResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CelularResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCelularResponse(c))
	}
	return items, nil
}

// Update aplica atualização parcial com captura de diff por campo.
func (uc *CelularUseCase) Update(ctx context.Context, id string, in dto.UpdateCelularRequest, ator entity.Ator) (*dto.CelularResponse, error) {
	antes, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if antes == nil {
		return nil, fmt.Errorf("celular %s: %w", id, domain.ErrNaoEncontrado)
	}

	depois := *antes
	if in.Filial != nil {
		depois.Filial = *in.Filial
	}
	if in.Modelo != nil {
		depois.Modelo = *in.Modelo
	}
	if in.IMEI != nil {
		depois.IMEI = *in.IMEI
	}
	if in.Numero != nil {
		depois.Numero = *in.Numero
	}
	if in.Operadora != nil {
		depois.Operadora = *in.Operadora
	}
	if in.Responsavel != nil {
		depois.Responsavel = *in.Responsavel
	}
	if in.Status != nil {
		novo, err := lifecycle.Patrimonios.Definir(*in.Status)
		if err != nil {
			return nil, err
		}
		depois.Status = novo
	}
	if in.Observacoes != nil {
		depois.Observacoes = *in.Observacoes
	}
	if in.DtCompra != nil {
		d, err := ParseData(*in.DtCompra)
		if err != nil {
			return nil, err
		}
		depois.DtCompra = d
	}
	if in.Valor != nil {
		v, err := ParseValor(*in.Valor)
		if err != nil {
			return nil, err
		}
		depois.Valor = v
	}

	entradas := audit.CapturarAtualizacao(entity.EntidadeCelular, antes.ID, antes.Patrimonio,
		audit.SnapshotCelular(antes), audit.SnapshotCelular(&depois), ator.Nome)
	if len(entradas) == 0 {
		return toCelularResponse(antes), nil
	}

	depois.AtualizadoEm = time.Now()
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Celulares.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoCelulares)
	return toCelularResponse(&depois), nil
}

// Delete inativa (soft) ou remove fisicamente (hard, só admin) um celular.
func (uc *CelularUseCase) Delete(ctx context.Context, id string, hard bool, ator entity.Ator) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("celular %s: %w", id, domain.ErrNaoEncontrado)
	}

	if hard {
		if err := lifecycle.Patrimonios.HardDelete(ator); err != nil {
			return err
		}
		entradas := audit.CapturarExclusao(entity.EntidadeCelular, c.ID, c.Patrimonio, ator.Nome)
		err = uc.tx.Run(ctx, func(s Store) error {
			if err := s.Logs.Append(ctx, entradas...); err != nil {
				return err
			}
			return s.Celulares.Delete(ctx, c.ID)
		})
		if err != nil {
			return err
		}
		uc.feed.Bump(changefeed.ColecaoCelulares)
		return nil
	}

	novo, err := lifecycle.Patrimonios.SoftDelete(c.Status)
	if err != nil {
		return err
	}
	depois := *c
	depois.Status = novo
	depois.AtualizadoEm = time.Now()
	entradas := audit.CapturarAtualizacao(entity.EntidadeCelular, c.ID, c.Patrimonio,
		audit.SnapshotCelular(c), audit.SnapshotCelular(&depois), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Celulares.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return err
	}
	uc.feed.Bump(changefeed.ColecaoCelulares)
	return nil
}

func toCelularResponse(c *entity.Celular) *dto.CelularResponse {
	return &dto.CelularResponse{
		ID:           c.ID,
		Patrimonio:   c.Patrimonio,
		Filial:       c.Filial,
		Modelo:       c.Modelo,
		IMEI:         c.IMEI,
		Numero:       c.Numero,
		Operadora:    c.Operadora,
		Responsavel:  c.Responsavel,
		Status:       c.Status,
		Observacoes:  c.Observacoes,
		DtCompra:     c.DtCompra,
		Valor:        c.Valor,
		CriadoEm:     c.CriadoEm,
		AtualizadoEm: c.AtualizadoEm,
	}
}
