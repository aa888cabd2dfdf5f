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

// SoftwareUseCase casos de uso de licenças de software. Cada licença pertence
// a exatamente um Ativo; a existência do pai é verificada antes de gravar.
type SoftwareUseCase struct {
	repo   repository.SoftwareRepository
	ativos repository.AtivoRepository
	tx     TxRunner
	feed   *changefeed.Feed
}

// NewSoftwareUseCase constrói o caso de uso.
func NewSoftwareUseCase(repo repository.SoftwareRepository, ativos repository.AtivoRepository, tx TxRunner, feed *changefeed.Feed) *SoftwareUseCase {
	return &SoftwareUseCase{repo: repo, ativos: ativos, tx: tx, feed: feed}
}

func (uc *SoftwareUseCase) resolverAtivo(ctx context.Context, assetID string) (*entity.Ativo, error) {
	a, err := uc.ativos.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("ativo %s: %w", assetID, domain.ErrNaoEncontrado)
	}
	return a, nil
}

// Create cadastra uma licença vinculada a um Ativo existente.
func (uc *SoftwareUseCase) Create(ctx context.Context, in dto.CreateSoftwareRequest, ator entity.Ator) (*dto.SoftwareResponse, error) {
	if in.Nome == "" || in.AssetID == "" {
		return nil, fmt.Errorf("nome e asset_id são obrigatórios: %w", domain.ErrValidacao)
	}
	pai, err := uc.resolverAtivo(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	dtInstalacao, err := ParseData(in.DtInstalacao)
	if err != nil {
		return nil, err
	}
	dtVencimento, err := ParseData(in.DtVencimento)
	if err != nil {
		return nil, err
	}
	custo, err := ParseValor(in.CustoAnual)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	sw := &entity.Software{
		ID:                  uuid.New().String(),
		Nome:                in.Nome,
		Versao:              in.Versao,
		AssetID:             pai.ID,
		AssetPatrimonio:     pai.Patrimonio,
		TipoLicenca:         in.TipoLicenca,
		ChaveLicenca:        in.ChaveLicenca,
		DtInstalacao:        dtInstalacao,
		DtVencimento:        dtVencimento,
		CustoAnual:          custo,
		RenovacaoAutomatica: in.RenovacaoAutomatica,
		Observacoes:         in.Observacoes,
		Status:              entity.StatusAtivo,
		CriadoEm:            agora,
		AtualizadoEm:        agora,
	}

	entradas := audit.CapturarCriacao(entity.EntidadeSoftware, sw.ID, sw.Nome, audit.SnapshotSoftware(sw), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Softwares.Create(ctx, sw); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoSoftwares)
	return toSoftwareResponse(sw), nil
}

// GetByID busca uma licença por ID.
func (uc *SoftwareUseCase) GetByID(ctx context.Context, id string) (*dto.SoftwareResponse, error) {
	sw, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, fmt.Errorf("software %s: %w", id, domain.ErrNaoEncontrado)
	}
	return toSoftwareResponse(sw), nil
}

// List lista licenças pelo filtro; escopo padrão exclui Inativos.
func (uc *SoftwareUseCase) List(ctx context.Context, filtro repository.FiltroSoftware) ([]dto.SoftwareResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SoftwareResponse, 0, len(list))
	for _, sw := range list {
		items = append(items, *toSoftwareResponse(sw))
	}
	return items, nil
}

// ListVencendo lista licenças ativas que vencem nos próximos dias.
func (uc *SoftwareUseCase) ListVencendo(ctx context.Context, dias int) ([]dto.SoftwareResponse, error) {
	if dias <= 0 {
		dias = 30
	}
	list, err := uc.repo.ListVencendo(ctx, time.Now().AddDate(0, 0, dias))
	if err != nil {
		return nil, err
	}
	items := make([]dto.SoftwareResponse, 0, len(list))
	for _, sw := range list {
		items = append(items, *toSoftwareResponse(sw))
	}
	return items, nil
}

// Update aplica atualização parcial. Troca de asset_id re-resolve o pai.
func (uc *SoftwareUseCase) Update(ctx context.Context, id string, in dto.UpdateSoftwareRequest, ator entity.Ator) (*dto.SoftwareResponse, error) {
	antes, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if antes == nil {
		return nil, fmt.Errorf("software %s: %w", id, domain.ErrNaoEncontrado)
	}

	depois := *antes
	if in.Nome != nil {
		depois.Nome = *in.Nome
	}
	if in.Versao != nil {
		depois.Versao = *in.Versao
	}
	if in.AssetID != nil {
		pai, err := uc.resolverAtivo(ctx, *in.AssetID)
		if err != nil {
			return nil, err
		}
		depois.AssetID = pai.ID
		depois.AssetPatrimonio = pai.Patrimonio
	}
	if in.TipoLicenca != nil {
		depois.TipoLicenca = *in.TipoLicenca
	}
	if in.ChaveLicenca != nil {
		depois.ChaveLicenca = *in.ChaveLicenca
	}
	if in.DtInstalacao != nil {
		d, err := ParseData(*in.DtInstalacao)
		if err != nil {
			return nil, err
		}
		depois.DtInstalacao = d
	}
	if in.DtVencimento != nil {
		d, err := ParseData(*in.DtVencimento)
		if err != nil {
			return nil, err
		}
		depois.DtVencimento = d
	}
	if in.CustoAnual != nil {
		v, err := ParseValor(*in.CustoAnual)
		if err != nil {
			return nil, err
		}
		depois.CustoAnual = v
	}
	if in.RenovacaoAutomatica != nil {
		depois.RenovacaoAutomatica = *in.RenovacaoAutomatica
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

	entradas := audit.CapturarAtualizacao(entity.EntidadeSoftware, antes.ID, antes.Nome,
		audit.SnapshotSoftware(antes), audit.SnapshotSoftware(&depois), ator.Nome)
	if len(entradas) == 0 {
		return toSoftwareResponse(antes), nil
	}

	depois.AtualizadoEm = time.Now()
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Softwares.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoSoftwares)
	return toSoftwareResponse(&depois), nil
}

// Delete inativa (soft) ou remove fisicamente (hard, só admin) uma licença.
func (uc *SoftwareUseCase) Delete(ctx context.Context, id string, hard bool, ator entity.Ator) error {
	sw, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sw == nil {
		return fmt.Errorf("software %s: %w", id, domain.ErrNaoEncontrado)
	}

	if hard {
		if err := lifecycle.Licencas.HardDelete(ator); err != nil {
			return err
		}
		entradas := audit.CapturarExclusao(entity.EntidadeSoftware, sw.ID, sw.Nome, ator.Nome)
		err = uc.tx.Run(ctx, func(s Store) error {
			if err := s.Logs.Append(ctx, entradas...); err != nil {
				return err
			}
			return s.Softwares.Delete(ctx, sw.ID)
		})
		if err != nil {
			return err
		}
		uc.feed.Bump(changefeed.ColecaoSoftwares)
		return nil
	}

	novo, err := lifecycle.Licencas.SoftDelete(sw.Status)
	if err != nil {
		return err
	}
	depois := *sw
	depois.Status = novo
	depois.AtualizadoEm = time.Now()
	entradas := audit.CapturarAtualizacao(entity.EntidadeSoftware, sw.ID, sw.Nome,
		audit.SnapshotSoftware(sw), audit.SnapshotSoftware(&depois), ator.Nome)
	err = uc.tx.Run(ctx, func(s Store) error {
		if err := s.Softwares.Update(ctx, &depois); err != nil {
			return err
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return err
	}
	uc.feed.Bump(changefeed.ColecaoSoftwares)
	return nil
}

// VincularLote sincroniza o conjunto de softwares de um ativo em uma única
// requisição: cria os que entraram, inativa os que saíram e registra uma
// entrada ADICAO e/ou REMOCAO no histórico do ativo com as listas itemizadas.
func (uc *SoftwareUseCase) VincularLote(ctx context.Context, assetID string, nomes []string, ator entity.Ator) error {
	pai, err := uc.resolverAtivo(ctx, assetID)
	if err != nil {
		return err
	}
	atuais, err := uc.repo.List(ctx, repository.FiltroSoftware{AssetID: pai.ID})
	if err != nil {
		return err
	}

	existentes := make(map[string]*entity.Software, len(atuais))
	antes := make([]string, 0, len(atuais))
	for _, sw := range atuais {
		existentes[sw.Nome] = sw
		antes = append(antes, sw.Nome)
	}
	desejados := make(map[string]bool, len(nomes))
	for _, n := range nomes {
		desejados[n] = true
	}

	entradas := audit.CapturarLista(entity.EntidadeAtivo, pai.ID, "softwares", antes, nomes, ator.Nome)
	if len(entradas) == 0 {
		return nil
	}

	agora := time.Now()
	err = uc.tx.Run(ctx, func(s Store) error {
		for _, nome := range nomes {
			if _, ok := existentes[nome]; ok {
				continue
			}
			novo := &entity.Software{
				ID:              uuid.New().String(),
				Nome:            nome,
				AssetID:         pai.ID,
				AssetPatrimonio: pai.Patrimonio,
				Status:          entity.StatusAtivo,
				CriadoEm:        agora,
				AtualizadoEm:    agora,
			}
			if err := s.Softwares.Create(ctx, novo); err != nil {
				return err
			}
		}
		for nome, sw := range existentes {
			if desejados[nome] {
				continue
			}
			baixa := *sw
			baixa.Status = entity.StatusInativo
			baixa.AtualizadoEm = agora
			if err := s.Softwares.Update(ctx, &baixa); err != nil {
				return err
			}
		}
		return s.Logs.Append(ctx, entradas...)
	})
	if err != nil {
		return err
	}
	uc.feed.Bump(changefeed.ColecaoSoftwares)
	return nil
}

func toSoftwareResponse(sw *entity.Software) *dto.SoftwareResponse {
	return &dto.SoftwareResponse{
		ID:                  sw.ID,
		Nome:                sw.Nome,
		Versao:              sw.Versao,
		AssetID:             sw.AssetID,
		AssetPatrimonio:     sw.AssetPatrimonio,
		TipoLicenca:         sw.TipoLicenca,
		ChaveLicenca:        sw.ChaveLicenca,
		DtInstalacao:        sw.DtInstalacao,
		DtVencimento:        sw.DtVencimento,
		CustoAnual:          sw.CustoAnual,
		RenovacaoAutomatica: sw.RenovacaoAutomatica,
		Observacoes:         sw.Observacoes,
		Status:              sw.Status,
		CriadoEm:            sw.CriadoEm,
		AtualizadoEm:        sw.AtualizadoEm,
	}
}
