package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/application/vinculo"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// Reconciler aplica lotes CSV contra o estoque de entidades. As linhas são
// processadas em sequência dentro da requisição: uma filial criada pela linha
// N já existe para a linha N+1. Linhas casadas pela chave natural atualizam
// (ALTERACAO no log); sem casamento, criam (CRIACAO).
type Reconciler struct {
	ativos    repository.AtivoRepository
	celulares repository.CelularRepository
	softwares repository.SoftwareRepository
	emails    repository.EmailRepository
	filiais   repository.FilialRepository

	ativoUC    *usecase.AtivoUseCase
	celularUC  *usecase.CelularUseCase
	softwareUC *usecase.SoftwareUseCase
	emailUC    *usecase.EmailUseCase
	filialUC   *usecase.FilialUseCase
	resolver   *vinculo.Resolver
}

// LoteFn é a assinatura comum dos métodos Importar*, útil para a camada HTTP
// tratar os quatro tipos de lote uniformemente.
type LoteFn func(ctx context.Context, r io.Reader, ator entity.Ator) (*dto.ImportReport, error)

// Deps dependências do Reconciler.
type Deps struct {
	Ativos    repository.AtivoRepository
	Celulares repository.CelularRepository
	Softwares repository.SoftwareRepository
	Emails    repository.EmailRepository
	Filiais   repository.FilialRepository

	AtivoUC    *usecase.AtivoUseCase
	CelularUC  *usecase.CelularUseCase
	SoftwareUC *usecase.SoftwareUseCase
	EmailUC    *usecase.EmailUseCase
	FilialUC   *usecase.FilialUseCase
	Resolver   *vinculo.Resolver
}

// New constrói o reconciliador.
func New(d Deps) *Reconciler {
	return &Reconciler{
		ativos:     d.Ativos,
		celulares:  d.Celulares,
		softwares:  d.Softwares,
		emails:     d.Emails,
		filiais:    d.Filiais,
		ativoUC:    d.AtivoUC,
		celularUC:  d.CelularUC,
		softwareUC: d.SoftwareUC,
		emailUC:    d.EmailUC,
		filialUC:   d.FilialUC,
		resolver:   d.Resolver,
	}
}

// relatorio acumula o resultado de um lote.
type relatorio struct {
	criados     int
	atualizados int
	erros       []string
}

func (r *relatorio) erro(linha int, formato string, args ...any) {
	r.erros = append(r.erros, fmt.Sprintf("Linha %d: %s", linha, fmt.Sprintf(formato, args...)))
}

func (r *relatorio) fechar() *dto.ImportReport {
	return &dto.ImportReport{
		Msg:   fmt.Sprintf("Processado! %d criados, %d atualizados.", r.criados, r.atualizados),
		Erros: append([]string{}, r.erros...),
	}
}

// garantirFilial cria a filial referenciada pela linha caso ainda não exista,
// para que linhas seguintes (e a própria) apontem para uma filial real.
func (rc *Reconciler) garantirFilial(ctx context.Context, nome string, ator entity.Ator) error {
	if nome == "" {
		return nil
	}
	f, err := rc.filiais.GetByNome(ctx, nome)
	if err != nil {
		return err
	}
	if f != nil {
		return nil
	}
	_, err = rc.filialUC.Create(ctx, dto.CreateFilialRequest{Nome: nome, Tipo: entity.FilialLoja}, ator)
	return err
}

// ImportarAtivos aplica um lote de estações de trabalho, chave natural patrimônio.
func (rc *Reconciler) ImportarAtivos(ctx context.Context, r io.Reader, ator entity.Ator) (*dto.ImportReport, error) {
	linhas, err := LerLinhas(r)
	if err != nil {
		return nil, err
	}
	var rel relatorio
	for _, linha := range linhas {
		patrimonio := linha.Get("patrimonio")
		if patrimonio == "" {
			rel.erro(linha.Numero, "patrimônio vazio")
			continue
		}
		if err := rc.garantirFilial(ctx, linha.Get("filial"), ator); err != nil {
			rel.erro(linha.Numero, "filial %q: %v", linha.Get("filial"), err)
			continue
		}

		existente, err := rc.ativos.GetByPatrimonio(ctx, patrimonio)
		if err != nil {
			rel.erro(linha.Numero, "consultar patrimônio %s: %v", patrimonio, err)
			continue
		}

		if existente == nil {
			_, err = rc.ativoUC.Create(ctx, dto.CreateAtivoRequest{
				Patrimonio:  patrimonio,
				Tipo:        linha.Get("tipo"),
				Marca:       linha.Get("marca"),
				Modelo:      linha.Get("modelo"),
				NumeroSerie: linha.Get("numero_serie"),
				Filial:      linha.Get("filial"),
				Setor:       linha.Get("setor"),
				Responsavel: linha.Get("responsavel"),
				Status:      linha.Get("status"),
				Observacoes: linha.Get("observacoes"),
				DtCompra:    linha.Get("dt_compra"),
				DtGarantia:  linha.Get("dt_garantia"),
				Valor:       linha.Get("valor"),
				Fornecedor:  linha.Get("fornecedor"),
				NotaFiscal:  linha.Get("nota_fiscal"),
				Anydesk:     linha.Get("anydesk"),
			}, ator)
			if err != nil {
				rel.erro(linha.Numero, "criar %s: %v", patrimonio, err)
				continue
			}
			rel.criados++
			continue
		}

		var upd dto.UpdateAtivoRequest
		aplicarColuna(linha, "tipo", &upd.Tipo)
		aplicarColuna(linha, "marca", &upd.Marca)
		aplicarColuna(linha, "modelo", &upd.Modelo)
		aplicarColuna(linha, "numero_serie", &upd.NumeroSerie)
		aplicarColuna(linha, "filial", &upd.Filial)
		aplicarColuna(linha, "setor", &upd.Setor)
		aplicarColuna(linha, "responsavel", &upd.Responsavel)
		aplicarColuna(linha, "status", &upd.Status)
		aplicarColuna(linha, "observacoes", &upd.Observacoes)
		aplicarColuna(linha, "dt_compra", &upd.DtCompra)
		aplicarColuna(linha, "dt_garantia", &upd.DtGarantia)
		aplicarColuna(linha, "valor", &upd.Valor)
		aplicarColuna(linha, "fornecedor", &upd.Fornecedor)
		aplicarColuna(linha, "nota_fiscal", &upd.NotaFiscal)
		aplicarColuna(linha, "anydesk", &upd.Anydesk)
		if _, err := rc.ativoUC.Update(ctx, existente.ID, upd, ator); err != nil {
			rel.erro(linha.Numero, "atualizar %s: %v", patrimonio, err)
			continue
		}
		rel.atualizados++
	}
	return rel.fechar(), nil
}

// ImportarCelulares aplica um lote de celulares, chave natural patrimônio.
func (rc *Reconciler) ImportarCelulares(ctx context.Context, r io.Reader, ator entity.Ator) (*dto.ImportReport, error) {
	linhas, err := LerLinhas(r)
	if err != nil {
		return nil, err
	}
	var rel relatorio
	for _, linha := range linhas {
		patrimonio := linha.Get("patrimonio")
		if patrimonio == "" {
			rel.erro(linha.Numero, "patrimônio vazio")
			continue
		}
		filial := linha.Get("filial")
		if filial == "" {
			filial = "Matriz"
		}
		if err := rc.garantirFilial(ctx, filial, ator); err != nil {
			rel.erro(linha.Numero, "filial %q: %v", filial, err)
			continue
		}

		existente, err := rc.celulares.GetByPatrimonio(ctx, patrimonio)
		if err != nil {
			rel.erro(linha.Numero, "consultar patrimônio %s: %v", patrimonio, err)
			continue
		}

		if existente == nil {
			_, err = rc.celularUC.Create(ctx, dto.CreateCelularRequest{
				Patrimonio:  patrimonio,
				Filial:      filial,
				Modelo:      linha.Get("modelo"),
				IMEI:        linha.Get("imei"),
				Numero:      linha.Get("numero"),
				Operadora:   linha.Get("operadora"),
				Responsavel: linha.Get("responsavel"),
				Status:      linha.Get("status"),
				Observacoes: linha.Get("observacoes"),
				DtCompra:    linha.Get("dt_compra"),
				Valor:       linha.Get("valor"),
			}, ator)
			if err != nil {
				rel.erro(linha.Numero, "criar %s: %v", patrimonio, err)
				continue
			}
			rel.criados++
			continue
		}

		var upd dto.UpdateCelularRequest
		aplicarColuna(linha, "filial", &upd.Filial)
		aplicarColuna(linha, "modelo", &upd.Modelo)
		aplicarColuna(linha, "imei", &upd.IMEI)
		aplicarColuna(linha, "numero", &upd.Numero)
		aplicarColuna(linha, "operadora", &upd.Operadora)
		aplicarColuna(linha, "responsavel", &upd.Responsavel)
		aplicarColuna(linha, "status", &upd.Status)
		aplicarColuna(linha, "observacoes", &upd.Observacoes)
		aplicarColuna(linha, "dt_compra", &upd.DtCompra)
		aplicarColuna(linha, "valor", &upd.Valor)
		if _, err := rc.celularUC.Update(ctx, existente.ID, upd, ator); err != nil {
			rel.erro(linha.Numero, "atualizar %s: %v", patrimonio, err)
			continue
		}
		rel.atualizados++
	}
	return rel.fechar(), nil
}

// ImportarSoftwares aplica um lote de licenças, chave natural (nome, ativo).
func (rc *Reconciler) ImportarSoftwares(ctx context.Context, r io.Reader, ator entity.Ator) (*dto.ImportReport, error) {
	linhas, err := LerLinhas(r)
	if err != nil {
		return nil, err
	}
	var rel relatorio
	for _, linha := range linhas {
		nome := linha.Get("nome")
		patPC := linha.GetQualquer("pat_computador", "pat_pc")
		if nome == "" || patPC == "" {
			rel.erro(linha.Numero, "nome ou patrimônio do computador vazio")
			continue
		}
		pc, err := rc.ativos.GetByPatrimonio(ctx, patPC)
		if err != nil {
			rel.erro(linha.Numero, "consultar PC %s: %v", patPC, err)
			continue
		}
		if pc == nil {
			rel.erro(linha.Numero, "PC %s não existe", patPC)
			continue
		}

		existente, err := rc.softwares.GetByNomeAndAsset(ctx, nome, pc.ID)
		if err != nil {
			rel.erro(linha.Numero, "consultar software %s: %v", nome, err)
			continue
		}

		if existente == nil {
			_, err = rc.softwareUC.Create(ctx, dto.CreateSoftwareRequest{
				Nome:                nome,
				Versao:              linha.Get("versao"),
				AssetID:             pc.ID,
				TipoLicenca:         linha.Get("tipo_licenca"),
				ChaveLicenca:        linha.Get("chave_licenca"),
				DtInstalacao:        linha.Get("dt_instalacao"),
				DtVencimento:        linha.Get("dt_vencimento"),
				CustoAnual:          linha.Get("custo_anual"),
				RenovacaoAutomatica: FlagSim(linha.Get("renovacao_automatica")),
			}, ator)
			if err != nil {
				rel.erro(linha.Numero, "criar %s: %v", nome, err)
				continue
			}
			rel.criados++
			continue
		}

		var upd dto.UpdateSoftwareRequest
		aplicarColuna(linha, "versao", &upd.Versao)
		aplicarColuna(linha, "tipo_licenca", &upd.TipoLicenca)
		aplicarColuna(linha, "chave_licenca", &upd.ChaveLicenca)
		aplicarColuna(linha, "dt_instalacao", &upd.DtInstalacao)
		aplicarColuna(linha, "dt_vencimento", &upd.DtVencimento)
		aplicarColuna(linha, "custo_anual", &upd.CustoAnual)
		if v, ok := linha.Lookup("renovacao_automatica"); ok {
			flag := FlagSim(v)
			upd.RenovacaoAutomatica = &flag
		}
		if _, err := rc.softwareUC.Update(ctx, existente.ID, upd, ator); err != nil {
			rel.erro(linha.Numero, "atualizar %s: %v", nome, err)
			continue
		}
		rel.atualizados++
	}
	return rel.fechar(), nil
}

// provedores de e-mail e suas colunas no CSV legado.
var provedoresEmail = []struct {
	tipo     string
	colConta string
	colSenha string
}{
	{entity.EmailGoogle, "conta google", "senha google"},
	{entity.EmailZimbra, "conta zimbra", "senha zimbra"},
	{entity.EmailMicrosoft, "conta microsoft", "senha microsoft"},
}

// ImportarEmails aplica um lote de contas de e-mail. Uma linha pode
// materializar até três contas (google/zimbra/microsoft), cada uma gatilhada
// pela própria coluna: ou com o endereço direto, ou com flag Sim apontando
// para o endereço base. O pai vem de pat_pc OU pat_cel — exatamente um.
func (rc *Reconciler) ImportarEmails(ctx context.Context, r io.Reader, ator entity.Ator) (*dto.ImportReport, error) {
	linhas, err := LerLinhas(r)
	if err != nil {
		return nil, err
	}
	var rel relatorio
	for _, linha := range linhas {
		patPC := linha.Get("pat_pc")
		patCel := linha.Get("pat_cel")
		switch {
		case patPC == "" && patCel == "":
			rel.erro(linha.Numero, "sem vínculo (pat_pc e pat_cel vazios)")
			continue
		case patPC != "" && patCel != "":
			rel.erro(linha.Numero, "vínculo ambíguo (pat_pc e pat_cel preenchidos)")
			continue
		}

		tipoVinculo := entity.VinculoWorkstation
		patrimonio := patPC
		if patCel != "" {
			tipoVinculo = entity.VinculoCelular
			patrimonio = patCel
		}
		pai, err := rc.resolver.PorPatrimonio(ctx, tipoVinculo, patrimonio)
		if err != nil {
			rel.erro(linha.Numero, "%q não encontrado no sistema", patrimonio)
			continue
		}

		enderecoBase := linha.GetQualquer("endereço", "endereco")
		for _, p := range provedoresEmail {
			conta := linha.Get(p.colConta)
			senha := linha.Get(p.colSenha)

			var endereco string
			switch {
			case EnderecoValido(conta):
				// endereço direto na coluna da conta
				endereco = conta
			case FlagSim(conta) && EnderecoValido(enderecoBase):
				endereco = enderecoBase
			default:
				continue
			}

			existente, err := rc.emails.GetByEnderecoTipo(ctx, endereco, p.tipo)
			if err != nil {
				rel.erro(linha.Numero, "consultar %s (%s): %v", endereco, p.tipo, err)
				continue
			}
			if existente != nil {
				upd := dto.UpdateEmailRequest{
					AssetID:   &pai.ID,
					AssetType: &pai.Tipo,
				}
				if senha != "" {
					upd.Senha = &senha
				}
				if _, err := rc.emailUC.Update(ctx, existente.ID, upd, ator); err != nil {
					rel.erro(linha.Numero, "atualizar %s (%s): %v", endereco, p.tipo, err)
					continue
				}
				rel.atualizados++
				continue
			}

			usuario, _, _ := strings.Cut(endereco, "@")
			_, err = rc.emailUC.Create(ctx, dto.CreateEmailRequest{
				Endereco:  endereco,
				Tipo:      p.tipo,
				AssetID:   pai.ID,
				AssetType: pai.Tipo,
				Usuario:   usuario,
				Senha:     senha,
			}, ator)
			if err != nil {
				rel.erro(linha.Numero, "criar %s (%s): %v", endereco, p.tipo, err)
				continue
			}
			rel.criados++
		}
	}
	return rel.fechar(), nil
}

// aplicarColuna seta o ponteiro de atualização parcial apenas quando a coluna
// existe no arquivo — coluna ausente preserva o valor atual do registro.
func aplicarColuna(linha Linha, coluna string, destino **string) {
	if v, ok := linha.Lookup(coluna); ok {
		*destino = &v
	}
}
