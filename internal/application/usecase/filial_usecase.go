package usecase

import (
	"context"
	"fmt"
	"sort"
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

// FilialUseCase casos de uso de filiais. A integridade referencial com
// patrimônios é informacional (referência por nome, sem foreign key): o
// delete verifica contagens antes de remover.
type FilialUseCase struct {
	repo      repository.FilialRepository
	ativos    repository.AtivoRepository
	celulares repository.CelularRepository
	tx        TxRunner
	feed      *changefeed.Feed
}

// NewFilialUseCase constrói o caso de uso.
func NewFilialUseCase(repo repository.FilialRepository, ativos repository.AtivoRepository, celulares repository.CelularRepository, tx TxRunner, feed *changefeed.Feed) *FilialUseCase {
	return &FilialUseCase{repo: repo, ativos: ativos, celulares: celulares, tx: tx, feed: feed}
}

// Create cadastra uma filial. Nome único (sensível a maiúsculas) e tipo válido.
func (uc *FilialUseCase) Create(ctx context.Context, in dto.CreateFilialRequest, ator entity.Ator) (*dto.FilialResponse, error) {
	if in.Nome == "" || in.Tipo == "" {
		return nil, fmt.Errorf("nome e tipo são obrigatórios: %w", domain.ErrValidacao)
	}
	if !entity.TipoFilialValido(in.Tipo) {
		return nil, fmt.Errorf("tipo %q deve ser Administrativo, Loja ou CD: %w", in.Tipo, domain.ErrValidacao)
	}
	existente, err := uc.repo.GetByNome(ctx, in.Nome)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("filial %q já existe: %w", in.Nome, domain.ErrDuplicado)
	}

	agora := time.Now()
	f := &entity.Filial{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Tipo:         in.Tipo,
		Endereco:     in.Endereco,
		Cidade:       in.Cidade,
		Estado:       in.Estado,
		Telefone:     in.Telefone,
		Ativo:        true,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}

	entradas := audit.CapturarCriacao(entity.EntidadeFilial, f.ID, f.Nome, audit.SnapshotFilial(f), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Filiais.Create(ctx, f); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoFiliais)
	return toFilialResponse(f), nil
}

// List lista todas as filiais em ordem alfabética.
func (uc *FilialUseCase) List(ctx context.Context) ([]dto.FilialResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FilialResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFilialResponse(f))
	}
	return items, nil
}

// Update aplica atualização parcial com captura de diff. Renomear a filial
// não realoca as referências por nome dos patrimônios existentes.
func (uc *FilialUseCase) Update(ctx context.Context, id string, in dto.UpdateFilialRequest, ator entity.Ator) (*dto.FilialResponse, error) {
	antes, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if antes == nil {
		return nil, fmt.Errorf("filial %s: %w", id, domain.ErrNaoEncontrado)
	}

	depois := *antes
	if in.Nome != nil && *in.Nome != antes.Nome {
		outra, err := uc.repo.GetByNome(ctx, *in.Nome)
		if err != nil {
			return nil, err
		}
		if outra != nil {
			return nil, fmt.Errorf("filial %q já existe: %w", *in.Nome, domain.ErrDuplicado)
		}
		depois.Nome = *in.Nome
	}
	if in.Tipo != nil {
		if !entity.TipoFilialValido(*in.Tipo) {
			return nil, fmt.Errorf("tipo %q deve ser Administrativo, Loja ou CD: %w", *in.Tipo, domain.ErrValidacao)
		}
		depois.Tipo = *in.Tipo
	}
	if in.Endereco != nil {
		depois.Endereco = *in.Endereco
	}
	if in.Cidade != nil {
		depois.Cidade = *in.Cidade
	}
	if in.Estado != nil {
		depois.Estado = *in.Estado
	}
	if in.Telefone != nil {
		depois.Telefone = *in.Telefone
	}
	if in.Ativo != nil {
		depois.Ativo = *in.Ativo
	}

	entradas := audit.CapturarAtualizacao(entity.EntidadeFilial, antes.ID, antes.Nome,
		audit.SnapshotFilial(antes), audit.SnapshotFilial(&depois), ator.Nome)
	if len(entradas) == 0 {
		return toFilialResponse(antes), nil
	}

	depois.AtualizadoEm = time.Now()
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Filiais.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoFiliais)
	return toFilialResponse(&depois), nil
}

// Delete remove fisicamente uma filial (só admin). Bloqueado enquanto houver
// ativo ou celular referenciando a filial pelo nome.
func (uc *FilialUseCase) Delete(ctx context.Context, id string, ator entity.Ator) error {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("filial %s: %w", id, domain.ErrNaoEncontrado)
	}
	if err := lifecycle.Patrimonios.HardDelete(ator); err != nil {
		return err
	}

	nAtivos, err := uc.ativos.CountByFilial(ctx, f.Nome)
	if err != nil {
		return err
	}
	nCelulares, err := uc.celulares.CountByFilial(ctx, f.Nome)
	if err != nil {
		return err
	}
	if nAtivos+nCelulares > 0 {
		return fmt.Errorf("filial %q referenciada por %d patrimônio(s): %w",
			f.Nome, nAtivos+nCelulares, domain.ErrConflito)
	}

	entradas := audit.CapturarExclusao(entity.EntidadeFilial, f.ID, f.Nome, ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Logs.Append(ctx, entradas...); err != nil {
			return err
		}
		return s.Filiais.Delete(ctx, f.ID)
	})
	if err != nil {
		return err
	}
	uc.feed.Bump(changefeed.ColecaoFiliais)
	return nil
}

// ListResponsaveis junta os responsáveis distintos de ativos e celulares de
// uma filial, ordenados, para preencher seletores do frontend.
func (uc *FilialUseCase) ListResponsaveis(ctx context.Context, filial string) ([]string, error) {
	deAtivos, err := uc.ativos.ListResponsaveis(ctx, filial)
	if err != nil {
		return nil, err
	}
	deCelulares, err := uc.celulares.ListResponsaveis(ctx, filial)
	if err != nil {
		return nil, err
	}
	visto := make(map[string]bool)
	todos := make([]string, 0, len(deAtivos)+len(deCelulares))
	for _, nome := range append(deAtivos, deCelulares...) {
		if nome == "" || visto[nome] {
			continue
		}
		visto[nome] = true
		todos = append(todos, nome)
	}
	sort.Strings(todos)
	return todos, nil
}

func toFilialResponse(f *entity.Filial) *dto.FilialResponse {
	return &dto.FilialResponse{
		ID:           f.ID,
		Nome:         f.Nome,
		Tipo:         f.Tipo,
		Endereco:     f.Endereco,
		Cidade:       f.Cidade,
		Estado:       f.Estado,
		Telefone:     f.Telefone,
		Ativo:        f.Ativo,
		CriadoEm:     f.CriadoEm,
		AtualizadoEm: f.AtualizadoEm,
	}
}
