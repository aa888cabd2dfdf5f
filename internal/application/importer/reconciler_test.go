package importer_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
	"github.com/refricriltecno/inventario-ti/internal/application/importer"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/application/vinculo"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Repositórios em memória
// ─────────────────────────────────────────────────────────────────────────────

type memAtivos struct{ porID map[string]*entity.Ativo }

func (m *memAtivos) Create(_ context.Context, a *entity.Ativo) error {
	c := *a
	m.porID[a.ID] = &c
	return nil
}

func (m *memAtivos) GetByID(_ context.Context, id string) (*entity.Ativo, error) {
	if a, ok := m.porID[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, nil
}

func (m *memAtivos) GetByPatrimonio(_ context.Context, pat string) (*entity.Ativo, error) {
	for _, a := range m.porID {
		if a.Patrimonio == pat {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memAtivos) Update(_ context.Context, a *entity.Ativo) error {
	c := *a
	m.porID[a.ID] = &c
	return nil
}

func (m *memAtivos) List(_ context.Context, _ repository.FiltroPatrimonio) ([]*entity.Ativo, error) {
	var out []*entity.Ativo
	for _, a := range m.porID {
		out = append(out, a)
	}
	return out, nil
}

func (m *memAtivos) Delete(_ context.Context, id string) error {
	delete(m.porID, id)
	return nil
}

func (m *memAtivos) CountByFilial(_ context.Context, _ string) (int, error) { return 0, nil }

func (m *memAtivos) ListResponsaveis(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

type memCelulares struct{ porID map[string]*entity.Celular }

func (m *memCelulares) Create(_ context.Context, c *entity.Celular) error {
	cp := *c
	m.porID[c.ID] = &cp
	return nil
}

func (m *memCelulares) GetByID(_ context.Context, id string) (*entity.Celular, error) {
	if c, ok := m.porID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memCelulares) GetByPatrimonio(_ context.Context, pat string) (*entity.Celular, error) {
	for _, c := range m.porID {
		if c.Patrimonio == pat {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCelulares) Update(_ context.Context, c *entity.Celular) error {
	cp := *c
	m.porID[c.ID] = &cp
	return nil
}

func (m *memCelulares) List(_ context.Context, _ repository.FiltroPatrimonio) ([]*entity.Celular, error) {
	return nil, nil
}

func (m *memCelulares) Delete(_ context.Context, id string) error {
	delete(m.porID, id)
	return nil
}

func (m *memCelulares) CountByFilial(_ context.Context, _ string) (int, error) { return 0, nil }

func (m *memCelulares) ListResponsaveis(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

type memSoftwares struct{ porID map[string]*entity.Software }

func (m *memSoftwares) Create(_ context.Context, s *entity.Software) error {
	c := *s
	m.porID[s.ID] = &c
	return nil
}

func (m *memSoftwares) GetByID(_ context.Context, id string) (*entity.Software, error) {
	if s, ok := m.porID[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, nil
}

func (m *memSoftwares) GetByNomeAndAsset(_ context.Context, nome, assetID string) (*entity.Software, error) {
	for _, s := range m.porID {
		if s.Nome == nome && s.AssetID == assetID {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memSoftwares) Update(_ context.Context, s *entity.Software) error {
	c := *s
	m.porID[s.ID] = &c
	return nil
}

func (m *memSoftwares) List(_ context.Context, _ repository.FiltroSoftware) ([]*entity.Software, error) {
	return nil, nil
}

func (m *memSoftwares) Delete(_ context.Context, id string) error {
	delete(m.porID, id)
	return nil
}

func (m *memSoftwares) ListVencendo(_ context.Context, _ time.Time) ([]*entity.Software, error) {
	return nil, nil
}

type memEmails struct{ porID map[string]*entity.Email }

func (m *memEmails) Create(_ context.Context, e *entity.Email) error {
	c := *e
	m.porID[e.ID] = &c
	return nil
}

func (m *memEmails) GetByID(_ context.Context, id string) (*entity.Email, error) {
	if e, ok := m.porID[id]; ok {
		c := *e
		return &c, nil
	}
	return nil, nil
}

func (m *memEmails) GetByEnderecoTipo(_ context.Context, endereco, tipo string) (*entity.Email, error) {
	for _, e := range m.porID {
		if e.Endereco == endereco && e.Tipo == tipo {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memEmails) Update(_ context.Context, e *entity.Email) error {
	c := *e
	m.porID[e.ID] = &c
	return nil
}

func (m *memEmails) List(_ context.Context, _ repository.FiltroEmail) ([]*entity.Email, error) {
	return nil, nil
}

func (m *memEmails) Delete(_ context.Context, id string) error {
	delete(m.porID, id)
	return nil
}

type memFiliais struct{ porID map[string]*entity.Filial }

func (m *memFiliais) Create(_ context.Context, f *entity.Filial) error {
	c := *f
	m.porID[f.ID] = &c
	return nil
}

func (m *memFiliais) GetByID(_ context.Context, id string) (*entity.Filial, error) {
	if f, ok := m.porID[id]; ok {
		c := *f
		return &c, nil
	}
	return nil, nil
}

func (m *memFiliais) GetByNome(_ context.Context, nome string) (*entity.Filial, error) {
	for _, f := range m.porID {
		if f.Nome == nome {
			c := *f
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memFiliais) Update(_ context.Context, f *entity.Filial) error {
	c := *f
	m.porID[f.ID] = &c
	return nil
}

func (m *memFiliais) List(_ context.Context) ([]*entity.Filial, error) { return nil, nil }

func (m *memFiliais) Delete(_ context.Context, id string) error {
	delete(m.porID, id)
	return nil
}

type memLogs struct{ entradas []*entity.AuditLog }

func (m *memLogs) Append(_ context.Context, entradas ...*entity.AuditLog) error {
	m.entradas = append(m.entradas, entradas...)
	return nil
}

func (m *memLogs) List(_ context.Context, _ string, _ int) ([]*entity.AuditLog, error) {
	return nil, nil
}

func (m *memLogs) ListByEntidade(_ context.Context, _ string, _ int) ([]*entity.AuditLog, error) {
	return nil, nil
}

func (m *memLogs) Estatisticas(_ context.Context) (*repository.LogEstatisticas, error) {
	return nil, nil
}

// memTx executa fn diretamente contra os repositórios em memória.
type memTx struct{ store usecase.Store }

func (t memTx) Run(_ context.Context, fn func(usecase.Store) error) error { return fn(t.store) }

// ─────────────────────────────────────────────────────────────────────────────
// Ambiente de teste
// ─────────────────────────────────────────────────────────────────────────────

type ambiente struct {
	rc        *importer.Reconciler
	ativos    *memAtivos
	celulares *memCelulares
	softwares *memSoftwares
	emails    *memEmails
	filiais   *memFiliais
	logs      *memLogs
}

func novoAmbiente(t *testing.T) *ambiente {
	t.Helper()

	a := &ambiente{
		ativos:    &memAtivos{porID: map[string]*entity.Ativo{}},
		celulares: &memCelulares{porID: map[string]*entity.Celular{}},
		softwares: &memSoftwares{porID: map[string]*entity.Software{}},
		emails:    &memEmails{porID: map[string]*entity.Email{}},
		filiais:   &memFiliais{porID: map[string]*entity.Filial{}},
		logs:      &memLogs{},
	}
	tx := memTx{store: usecase.Store{
		Ativos:    a.ativos,
		Celulares: a.celulares,
		Softwares: a.softwares,
		Emails:    a.emails,
		Filiais:   a.filiais,
		Logs:      a.logs,
	}}
	feed := changefeed.New()
	resolver := vinculo.NewResolver(a.ativos, a.celulares)

	a.rc = importer.New(importer.Deps{
		Ativos:     a.ativos,
		Celulares:  a.celulares,
		Softwares:  a.softwares,
		Emails:     a.emails,
		Filiais:    a.filiais,
		AtivoUC:    usecase.NewAtivoUseCase(a.ativos, tx, feed),
		CelularUC:  usecase.NewCelularUseCase(a.celulares, tx, feed),
		SoftwareUC: usecase.NewSoftwareUseCase(a.softwares, a.ativos, tx, feed),
		EmailUC:    usecase.NewEmailUseCase(a.emails, resolver, tx, feed),
		FilialUC:   usecase.NewFilialUseCase(a.filiais, a.ativos, a.celulares, tx, feed),
		Resolver:   resolver,
	})
	return a
}

var operador = entity.Ator{ID: "u-1", Nome: "maria", Permissoes: []string{"view", "edit"}}

// ─────────────────────────────────────────────────────────────────────────────
// Ativos
// ─────────────────────────────────────────────────────────────────────────────

func TestImportarAtivosCriaEAtualiza(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	csv := "patrimonio;tipo;filial;responsavel\n" +
		"PAT-001;Notebook;Matriz;João\n" +
		"PAT-002;Desktop;Matriz;Ana\n"
	rel, err := amb.rc.ImportarAtivos(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)
	assert.Equal(t, "Processado! 2 criados, 0 atualizados.", rel.Msg)
	assert.Empty(t, rel.Erros)

	// Segundo lote: mesma chave natural casa com o registro existente.
	csv = "patrimonio;responsavel\nPAT-001;Carlos\n"
	rel, err = amb.rc.ImportarAtivos(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)
	assert.Equal(t, "Processado! 0 criados, 1 atualizados.", rel.Msg)

	a, _ := amb.ativos.GetByPatrimonio(ctx, "PAT-001")
	require.NotNil(t, a)
	assert.Equal(t, "Carlos", a.Responsavel)
	// Coluna ausente do segundo arquivo não apaga o valor existente.
	assert.Equal(t, "Notebook", a.Tipo)
}

func TestImportarAtivosLinhaRuimNaoAbortaOLote(t *testing.T) {
	amb := novoAmbiente(t)

	csv := "patrimonio;tipo\n" +
		";Notebook\n" +
		"PAT-010;Desktop\n"
	rel, err := amb.rc.ImportarAtivos(context.Background(), strings.NewReader(csv), operador)
	require.NoError(t, err)

	require.Len(t, rel.Erros, 1)
	assert.Equal(t, "Linha 2: patrimônio vazio", rel.Erros[0])
	assert.Equal(t, "Processado! 1 criados, 0 atualizados.", rel.Msg)
}

func TestImportarAtivosCriaFilialAusente(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	csv := "patrimonio;filial\nPAT-001;Loja Centro\nPAT-002;Loja Centro\n"
	rel, err := amb.rc.ImportarAtivos(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)
	assert.Empty(t, rel.Erros)

	// Uma única filial criada, reaproveitada pela segunda linha.
	f, _ := amb.filiais.GetByNome(ctx, "Loja Centro")
	require.NotNil(t, f)
	assert.Equal(t, entity.FilialLoja, f.Tipo)
	assert.Len(t, amb.filiais.porID, 1)
}

func TestImportarAtivosAuditaPeloMesmoCaminho(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	csv := "patrimonio;tipo\nPAT-001;Notebook\n"
	_, err := amb.rc.ImportarAtivos(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)

	require.Len(t, amb.logs.entradas, 1)
	assert.Equal(t, entity.AcaoCriacao, amb.logs.entradas[0].Acao)
	assert.Equal(t, "maria", amb.logs.entradas[0].Usuario)

	// Reimportação sem mudança não gera entrada nova.
	antes := len(amb.logs.entradas)
	_, err = amb.rc.ImportarAtivos(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)
	assert.Equal(t, antes, len(amb.logs.entradas))
}

// ─────────────────────────────────────────────────────────────────────────────
// Celulares
// ─────────────────────────────────────────────────────────────────────────────

func TestImportarCelularesFilialPadraoMatriz(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	csv := "patrimonio;modelo\nCEL-001;Galaxy S23\n"
	rel, err := amb.rc.ImportarCelulares(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)
	assert.Empty(t, rel.Erros)

	c, _ := amb.celulares.GetByPatrimonio(ctx, "CEL-001")
	require.NotNil(t, c)
	assert.Equal(t, "Matriz", c.Filial)
}

// ─────────────────────────────────────────────────────────────────────────────
// Softwares
// ─────────────────────────────────────────────────────────────────────────────

func TestImportarSoftwaresChavePorNomeEPC(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	_, err := amb.rc.ImportarAtivos(ctx, strings.NewReader("patrimonio\nPAT-001\n"), operador)
	require.NoError(t, err)

	csv := "nome;pat_pc;versao\nOffice;PAT-001;2021\nAutoCAD;PAT-404;2024\n"
	rel, err := amb.rc.ImportarSoftwares(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)

	assert.Equal(t, "Processado! 1 criados, 0 atualizados.", rel.Msg)
	require.Len(t, rel.Erros, 1)
	assert.Contains(t, rel.Erros[0], "PAT-404 não existe")

	// Mesmo (nome, PC) na reimportação atualiza em vez de duplicar.
	csv = "nome;pat_pc;versao\nOffice;PAT-001;2024\n"
	rel, err = amb.rc.ImportarSoftwares(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)
	assert.Equal(t, "Processado! 0 criados, 1 atualizados.", rel.Msg)
	assert.Len(t, amb.softwares.porID, 1)
}

// ─────────────────────────────────────────────────────────────────────────────
// E-mails
// ─────────────────────────────────────────────────────────────────────────────

func TestImportarEmailsExigeExatamenteUmVinculo(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	_, err := amb.rc.ImportarAtivos(ctx, strings.NewReader("patrimonio\nPAT-001\n"), operador)
	require.NoError(t, err)
	_, err = amb.rc.ImportarCelulares(ctx, strings.NewReader("patrimonio\nCEL-001\n"), operador)
	require.NoError(t, err)

	csv := "pat_pc;pat_cel;conta google;senha google\n" +
		";;ti@empresa.com.br;s3nh4\n" +
		"PAT-001;CEL-001;ti@empresa.com.br;s3nh4\n"
	rel, err := amb.rc.ImportarEmails(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)

	require.Len(t, rel.Erros, 2)
	assert.Equal(t, "Linha 2: sem vínculo (pat_pc e pat_cel vazios)", rel.Erros[0])
	assert.Equal(t, "Linha 3: vínculo ambíguo (pat_pc e pat_cel preenchidos)", rel.Erros[1])
	assert.Empty(t, amb.emails.porID)
}

func TestImportarEmailsFanOutPorFlags(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	_, err := amb.rc.ImportarAtivos(ctx, strings.NewReader("patrimonio\nPAT-001\n"), operador)
	require.NoError(t, err)

	// Uma linha, três contas: google e zimbra via flag Sim sobre o endereço
	// base, microsoft com endereço direto na coluna da conta.
	csv := "pat_pc;endereço;conta google;senha google;conta zimbra;senha zimbra;conta microsoft;senha microsoft\n" +
		"PAT-001;loja@empresa.com.br;Sim;g123;1;z123;loja@outlook.com.br;m123\n"
	rel, err := amb.rc.ImportarEmails(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)
	assert.Equal(t, "Processado! 3 criados, 0 atualizados.", rel.Msg)
	assert.Empty(t, rel.Erros)

	g, _ := amb.emails.GetByEnderecoTipo(ctx, "loja@empresa.com.br", entity.EmailGoogle)
	require.NotNil(t, g)
	assert.Equal(t, entity.VinculoWorkstation, g.Vinculo.Tipo)
	assert.Equal(t, "PAT-001", g.Vinculo.Patrimonio)
	assert.Equal(t, "loja", g.Usuario)
	assert.Equal(t, "g123", g.Senha)

	z, _ := amb.emails.GetByEnderecoTipo(ctx, "loja@empresa.com.br", entity.EmailZimbra)
	require.NotNil(t, z)

	ms, _ := amb.emails.GetByEnderecoTipo(ctx, "loja@outlook.com.br", entity.EmailMicrosoft)
	require.NotNil(t, ms)
	assert.Equal(t, "m123", ms.Senha)
}

func TestImportarEmailsAtualizaVinculoESenha(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	_, err := amb.rc.ImportarAtivos(ctx, strings.NewReader("patrimonio\nPAT-001\nPAT-002\n"), operador)
	require.NoError(t, err)

	csv := "pat_pc;conta google;senha google\nPAT-001;ti@empresa.com.br;antiga\n"
	_, err = amb.rc.ImportarEmails(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)

	// Reimportação aponta a conta para outro PC; senha vazia preserva a atual.
	csv = "pat_pc;conta google;senha google\nPAT-002;ti@empresa.com.br;\n"
	rel, err := amb.rc.ImportarEmails(ctx, strings.NewReader(csv), operador)
	require.NoError(t, err)
	assert.Equal(t, "Processado! 0 criados, 1 atualizados.", rel.Msg)

	e, _ := amb.emails.GetByEnderecoTipo(ctx, "ti@empresa.com.br", entity.EmailGoogle)
	require.NotNil(t, e)
	assert.Equal(t, "PAT-002", e.Vinculo.Patrimonio)
	assert.Equal(t, "antiga", e.Senha)
}

func TestImportarEmailsPaiInexistente(t *testing.T) {
	amb := novoAmbiente(t)

	csv := "pat_pc;conta google\nPAT-404;ti@empresa.com.br\n"
	rel, err := amb.rc.ImportarEmails(context.Background(), strings.NewReader(csv), operador)
	require.NoError(t, err)

	require.Len(t, rel.Erros, 1)
	assert.Equal(t, `Linha 2: "PAT-404" não encontrado no sistema`, rel.Erros[0])
}
