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

// AtivoUseCase casos de uso de estações de trabalho. Toda mutação passa pelo
// mesmo caminho: pré-imagem -> aplicação -> captura de auditoria -> commit na
// mesma transação.
type AtivoUseCase struct {
	repo repository.AtivoRepository
	tx   TxRunner
	feed *changefeed.Feed
}

// NewAtivoUseCase constrói o caso de uso.
func NewAtivoUseCase(repo repository.AtivoRepository, tx TxRunner, feed *changefeed.Feed) *AtivoUseCase {
	return &AtivoUseCase{repo: repo, tx: tx, feed: feed}
}

// Create cadastra uma estação. Patrimônio é a chave natural e não pode repetir.
func (uc *AtivoUseCase) Create(ctx context.Context, in dto.CreateAtivoRequest, ator entity.Ator) (*dto.AtivoResponse, error) {
	if in.Patrimonio == "" {
		return nil, fmt.Errorf("patrimonio é obrigatório: %w", domain.ErrValidacao)
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
	dtGarantia, err := ParseData(in.DtGarantia)
	if err != nil {
		return nil, err
	}
	valor, err := ParseValor(in.Valor)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	a := &entity.Ativo{
		ID:           uuid.New().String(),
		Patrimonio:   in.Patrimonio,
		Tipo:         in.Tipo,
		Marca:        in.Marca,
		Modelo:       in.Modelo,
		NumeroSerie:  in.NumeroSerie,
		Filial:       in.Filial,
		Setor:        in.Setor,
		Responsavel:  in.Responsavel,
		Status:       status,
		SenhaBios:    in.SenhaBios,
		SenhaOS:      in.SenhaOS,
		SenhaVPN:     in.SenhaVPN,
		Observacoes:  in.Observacoes,
		DtCompra:     dtCompra,
		DtGarantia:   dtGarantia,
		Valor:        valor,
		Fornecedor:   in.Fornecedor,
		NotaFiscal:   in.NotaFiscal,
		Anydesk:      in.Anydesk,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}

	entradas := audit.CapturarCriacao(entity.EntidadeAtivo, a.ID, a.Patrimonio, audit.SnapshotAtivo(a), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Ativos.Create(ctx, a); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoAtivos)
	return toAtivoResponse(a), nil
}

// GetByID busca uma estação por ID.
func (uc *AtivoUseCase) GetByID(ctx context.Context, id string) (*dto.AtivoResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("ativo %s: %w", id, domain.ErrNaoEncontrado)
	}
	return toAtivoResponse(a), nil
}

// List lista estações pelo filtro; o escopo padrão exclui Inativos.
func (uc *AtivoUseCase) List(ctx context.Context, filtro repository.FiltroPatrimonio) ([]dto.AtivoResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AtivoResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAtivoResponse(a))
	}
	return items, nil
}

// Update aplica uma atualização parcial. Somente campos presentes no request
// tocam a entidade; cada campo que efetivamente mudou de valor vira uma
// entrada ALTERACAO no log.
func (uc *AtivoUseCase) Update(ctx context.Context, id string, in dto.UpdateAtivoRequest, ator entity.Ator) (*dto.AtivoResponse, error) {
	antes, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if antes == nil {
		return nil, fmt.Errorf("ativo %s: %w", id, domain.ErrNaoEncontrado)
	}

	depois := *antes
	if in.Tipo != nil {
		depois.Tipo = *in.Tipo
	}
	if in.Marca != nil {
		depois.Marca = *in.Marca
	}
	if in.Modelo != nil {
		depois.Modelo = *in.Modelo
	}
	if in.NumeroSerie != nil {
		depois.NumeroSerie = *in.NumeroSerie
	}
	if in.Filial != nil {
		depois.Filial = *in.Filial
	}
	if in.Setor != nil {
		depois.Setor = *in.Setor
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
	if in.SenhaBios != nil {
		depois.SenhaBios = *in.SenhaBios
	}
	if in.SenhaOS != nil {
		depois.SenhaOS = *in.SenhaOS
	}
	if in.SenhaVPN != nil {
		depois.SenhaVPN = *in.SenhaVPN
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
	if in.DtGarantia != nil {
		d, err := ParseData(*in.DtGarantia)
		if err != nil {
			return nil, err
		}
		depois.DtGarantia = d
	}
	if in.Valor != nil {
		v, err := ParseValor(*in.Valor)
		if err != nil {
			return nil, err
		}
		depois.Valor = v
	}
	if in.Fornecedor != nil {
		depois.Fornecedor = *in.Fornecedor
	}
	if in.NotaFiscal != nil {
		depois.NotaFiscal = *in.NotaFiscal
	}
	if in.Anydesk != nil {
		depois.Anydesk = *in.Anydesk
	}

	entradas := audit.CapturarAtualizacao(entity.EntidadeAtivo, antes.ID, antes.Patrimonio,
		audit.SnapshotAtivo(antes), audit.SnapshotAtivo(&depois), ator.Nome)
	if len(entradas) == 0 {
		return toAtivoResponse(antes), nil
	}

	depois.AtualizadoEm = time.Now()
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Ativos.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoAtivos)
	return toAtivoResponse(&depois), nil
}

// Delete inativa (soft) ou remove fisicamente (hard, só admin) uma estação.
// O hard delete grava a entrada terminal de auditoria antes da remoção.
func (uc *AtivoUseCase) Delete(ctx context.Context, id string, hard bool, ator entity.Ator) error {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("ativo %s: %w", id, domain.ErrNaoEncontrado)
	}

	if hard {
		if err := lifecycle.Patrimonios.HardDelete(ator); err != nil {
			return err
		}
		entradas := audit.CapturarExclusao(entity.EntidadeAtivo, a.ID, a.Patrimonio, ator.Nome)
		err = uc.tx.Run(ctx, func(s Store) error {
			if err := s.Logs.Append(ctx, entradas...); err != nil {
				return err
			}
			return s.Ativos.Delete(ctx, a.ID)
		})
		if err != nil {
			return err
		}
		uc.feed.Bump(changefeed.ColecaoAtivos)
		return nil
	}

	novo, err := lifecycle.Patrimonios.SoftDelete(a.Status)
	if err != nil {
		return err
	}
	depois := *a
	depois.Status = novo
	depois.AtualizadoEm = time.Now()
	entradas := audit.CapturarAtualizacao(entity.EntidadeAtivo, a.ID, a.Patrimonio,
		audit.SnapshotAtivo(a), audit.SnapshotAtivo(&depois), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Ativos.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return err
	}
	uc.feed.Bump(changefeed.ColecaoAtivos)
	return nil
}

func toAtivoResponse(a *entity.Ativo) *dto.AtivoResponse {
	return &dto.AtivoResponse{
		ID:           a.ID,
		Patrimonio:   a.Patrimonio,
		Tipo:         a.Tipo,
		Marca:        a.Marca,
		Modelo:       a.Modelo,
		NumeroSerie:  a.NumeroSerie,
		Filial:       a.Filial,
		Setor:        a.Setor,
		Responsavel:  a.Responsavel,
		Status:       a.Status,
		Observacoes:  a.Observacoes,
		DtCompra:     a.DtCompra,
		DtGarantia:   a.DtGarantia,
		Valor:        a.Valor,
		Fornecedor:   a.Fornecedor,
		NotaFiscal:   a.NotaFiscal,
		Anydesk:      a.Anydesk,
		CriadoEm:     a.CriadoEm,
		AtualizadoEm: a.AtualizadoEm,
	}
}
