package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/refricriltecno/inventario-ti/internal/application/audit"
	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/lifecycle"
	"github.com/refricriltecno/inventario-ti/internal/application/vinculo"
	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// EmailUseCase casos de uso de contas de e-mail. O vínculo polimórfico
// (ativo ou celular) passa sempre pelo resolver antes de qualquer gravação.
type EmailUseCase struct {
	repo     repository.EmailRepository
	resolver *vinculo.Resolver
	tx       TxRunner
	feed     *changefeed.Feed
}

// NewEmailUseCase constrói o caso de uso.
func NewEmailUseCase(repo repository.EmailRepository, resolver *vinculo.Resolver, tx TxRunner, feed *changefeed.Feed) *EmailUseCase {
	return &EmailUseCase{repo: repo, resolver: resolver, tx: tx, feed: feed}
}

// Create cadastra uma conta. Endereço, tipo e vínculo são obrigatórios;
// (endereço, tipo) não pode repetir.
func (uc *EmailUseCase) Create(ctx context.Context, in dto.CreateEmailRequest, ator entity.Ator) (*dto.EmailResponse, error) {
	if in.Endereco == "" || in.Tipo == "" || in.AssetID == "" {
		return nil, fmt.Errorf("endereco, tipo e asset_id são obrigatórios: %w", domain.ErrValidacao)
	}
	if !entity.TipoEmailValido(in.Tipo) {
		return nil, fmt.Errorf("tipo %q deve ser google, zimbra ou microsoft: %w", in.Tipo, domain.ErrValidacao)
	}
	tipoVinculo := in.AssetType
	if tipoVinculo == "" {
		tipoVinculo = entity.VinculoWorkstation
	}
	pai, err := uc.resolver.PorID(ctx, tipoVinculo, in.AssetID)
	if err != nil {
		return nil, err
	}
	existente, err := uc.repo.GetByEnderecoTipo(ctx, in.Endereco, in.Tipo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%s (%s) já cadastrado: %w", in.Endereco, in.Tipo, domain.ErrDuplicado)
	}

	usuario := in.Usuario
	if usuario == "" {
		usuario, _, _ = strings.Cut(in.Endereco, "@")
	}

	agora := time.Now()
	e := &entity.Email{
		ID:           uuid.New().String(),
		Endereco:     in.Endereco,
		Tipo:         in.Tipo,
		Vinculo:      *pai,
		Usuario:      usuario,
		Senha:        in.Senha,
		Recuperacao:  in.Recuperacao,
		Observacoes:  in.Observacoes,
		Status:       entity.StatusAtivo,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}

	entradas := audit.CapturarCriacao(entity.EntidadeEmail, e.ID, e.Endereco, audit.SnapshotEmail(e), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Emails.Create(ctx, e); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoEmails)
	return toEmailResponse(e, false), nil
}

// GetByID busca uma conta por ID; comSenha inclui a senha no corpo.
func (uc *EmailUseCase) GetByID(ctx context.Context, id string, comSenha bool) (*dto.EmailResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("email %s: %w", id, domain.ErrNaoEncontrado)
	}
	return toEmailResponse(e, comSenha), nil
}

// List lista contas pelo filtro; escopo padrão exclui Inativos.
func (uc *EmailUseCase) List(ctx context.Context, filtro repository.FiltroEmail) ([]dto.EmailResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmailResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmailResponse(e, false))
	}
	return items, nil
}

// Update aplica atualização parcial. Troca de vínculo exige o par
// (asset_id, asset_type) e re-resolve o pai.
func (uc *EmailUseCase) Update(ctx context.Context, id string, in dto.UpdateEmailRequest, ator entity.Ator) (*dto.EmailResponse, error) {
	antes, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if antes == nil {
		return nil, fmt.Errorf("email %s: %w", id, domain.ErrNaoEncontrado)
	}

	depois := *antes
	if in.Endereco != nil {
		depois.Endereco = *in.Endereco
	}
	if in.Tipo != nil {
		if !entity.TipoEmailValido(*in.Tipo) {
			return nil, fmt.Errorf("tipo %q deve ser google, zimbra ou microsoft: %w", *in.Tipo, domain.ErrValidacao)
		}
		depois.Tipo = *in.Tipo
	}
	if in.AssetID != nil {
		tipoVinculo := antes.Vinculo.Tipo
		if in.AssetType != nil {
			tipoVinculo = *in.AssetType
		}
		pai, err := uc.resolver.PorID(ctx, tipoVinculo, *in.AssetID)
		if err != nil {
			return nil, err
		}
		depois.Vinculo = *pai
	}
	if in.Usuario != nil {
		depois.Usuario = *in.Usuario
	}
	if in.Senha != nil {
		depois.Senha = *in.Senha
	}
	if in.Recuperacao != nil {
		depois.Recuperacao = *in.Recuperacao
	}
	if in.Observacoes != nil {
		depois.Observacoes = *in.Observacoes
	}
	if in.Status != nil {
		novo, err := lifecycle.Licencas.Definir(*in.Status)
		if err != nil {
			return nil, err
		}
		depois.Status = novo
	}

	entradas := audit.CapturarAtualizacao(entity.EntidadeEmail, antes.ID, antes.Endereco,
		audit.SnapshotEmail(antes), audit.SnapshotEmail(&depois), ator.Nome)
	if len(entradas) == 0 {
		return toEmailResponse(antes, false), nil
	}

	depois.AtualizadoEm = time.Now()
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Emails.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoEmails)
	return toEmailResponse(&depois, false), nil
}

// Delete inativa (soft) ou remove fisicamente (hard, só admin) uma conta.
func (uc *EmailUseCase) Delete(ctx context.Context, id string, hard bool, ator entity.Ator) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("email %s: %w", id, domain.ErrNaoEncontrado)
	}

	if hard {
		if err := lifecycle.Licencas.HardDelete(ator); err != nil {
			return err
		}
		entradas := audit.CapturarExclusao(entity.EntidadeEmail, e.ID, e.Endereco, ator.Nome)
		err = uc.tx.Run(ctx, func(s Store) error {
			if err := s.Logs.Append(ctx, entradas...); err != nil {
				return err
			}
			return s.Emails.Delete(ctx, e.ID)
		})
		if err != nil {
			return err
		}
		uc.feed.Bump(changefeed.ColecaoEmails)
		return nil
	}

	novo, err := lifecycle.Licencas.SoftDelete(e.Status)
	if err != nil {
		return err
	}
	depois := *e
	depois.Status = novo
	depois.AtualizadoEm = time.Now()
	entradas := audit.CapturarAtualizacao(entity.EntidadeEmail, e.ID, e.Endereco,
		audit.SnapshotEmail(e), audit.SnapshotEmail(&depois), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Emails.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return err
	}
	uc.feed.Bump(changefeed.ColecaoEmails)
	return nil
}

func toEmailResponse(e *entity.Email, comSenha bool) *dto.EmailResponse {
	out := &dto.EmailResponse{
		ID:              e.ID,
		Endereco:        e.Endereco,
		Tipo:            e.Tipo,
		AssetID:         e.Vinculo.ID,
		AssetType:       e.Vinculo.Tipo,
		AssetPatrimonio: e.Vinculo.Patrimonio,
		Usuario:         e.Usuario,
		Recuperacao:     e.Recuperacao,
		Observacoes:     e.Observacoes,
		Status:          e.Status,
		CriadoEm:        e.CriadoEm,
		AtualizadoEm:    e.AtualizadoEm,
	}
	if comSenha {
		out.Senha = e.Senha
	}
	return out
}
