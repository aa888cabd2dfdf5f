package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/refricriltecno/inventario-ti/internal/interfaces/http"
	pkgjwt "github.com/refricriltecno/inventario-ti/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "inventario-ti-test"
	testExpMin    = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para validar o JWT e carregar o ator nos locals
//   - RequirePermissao para autorizar o acesso
//   - Um handler dummy que devolve 200 se passa pelos middlewares
func buildTestApp(perm string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar erros internos nos testes
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Rota protegida: JWT + permissão
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermissao(perm),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"nome": apphttp.GetAtor(c).Nome,
			})
		},
	)
	return app
}

// tokenComPermissoes gera um JWT com o conjunto de permissões indicado.
func tokenComPermissoes(t *testing.T, permissoes ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identidade{
		UserID:     testUserID,
		Username:   "maria",
		Nome:       "Maria",
		Filial:     "Matriz",
		Permissoes: permissoes,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara um GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermissao
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: o usuário tem a permissão requerida → deve passar (HTTP 200).
func TestRequirePermissao_EditorAcessaRotaEdit(t *testing.T) {
	app := buildTestApp("edit")
	resp := doRequest(t, app, tokenComPermissoes(t, "view", "edit"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"quem tem edit deve acessar rota restrita a edit")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "a resposta deve incluir ok:true")
	assert.Equal(t, "Maria", body["nome"], "o nome vem da identidade do token")
}

// Caso 1b: admin implica todas as permissões → HTTP 200 em qualquer rota.
func TestRequirePermissao_AdminPassaEmQualquerRota(t *testing.T) {
	app := buildTestApp("delete")
	resp := doRequest(t, app, tokenComPermissoes(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin deve passar em rota restrita a delete sem tê-la explícita")
}

// Caso 2: o usuário não tem a permissão requerida → HTTP 403 Forbidden.
func TestRequirePermissao_ViewBloqueadoEmRotaEdit(t *testing.T) {
	app := buildTestApp("edit")
	resp := doRequest(t, app, tokenComPermissoes(t, "view"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"quem só tem view não deve acessar rota restrita a edit")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

// Caso 2b: edit não implica delete → HTTP 403.
func TestRequirePermissao_EditBloqueadoEmRotaDelete(t *testing.T) {
	app := buildTestApp("delete")
	resp := doRequest(t, app, tokenComPermissoes(t, "view", "edit"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: sem header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequirePermissao_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("view")
	resp := doRequest(t, app, "") // sem header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 4: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequirePermissao_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("view")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 5: header sem o prefixo Bearer → HTTP 401.
func TestRequirePermissao_FormatoErrado_Retorna401(t *testing.T) {
	app := buildTestApp("view")
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extração da identidade do token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiAtor(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		ator := apphttp.GetAtor(c)
		return c.JSON(fiber.Map{
			"id":         ator.ID,
			"nome":       ator.Nome,
			"permissoes": ator.Permissoes,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenComPermissoes(t, "view", "edit"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID         string   `json:"id"`
		Nome       string   `json:"nome"`
		Permissoes []string `json:"permissoes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.ID)
	assert.Equal(t, "Maria", body.Nome)
	assert.Equal(t, []string{"view", "edit"}, body.Permissoes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridade do generate/parse com a identidade
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identidade{
		UserID:     testUserID,
		Username:   "maria",
		Nome:       "Maria",
		Filial:     "Matriz",
		Permissoes: []string{"view", "edit", "delete"},
	}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, id.UserID)
	assert.Equal(t, "maria", id.Username)
	assert.Equal(t, "Matriz", id.Filial)
	assert.Equal(t, []string{"view", "edit", "delete"}, id.Permissoes)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token com expiração -1 minuto (já expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identidade{UserID: testUserID}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identidade{UserID: testUserID}, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}

func TestJWT_SecretVazio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Identidade{UserID: testUserID}, testIssuer, testExpMin)
	assert.Error(t, err)
}
