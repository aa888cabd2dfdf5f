package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/auth"
	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
	"github.com/refricriltecno/inventario-ti/internal/application/importer"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AtivoUC    *usecase.AtivoUseCase
	CelularUC  *usecase.CelularUseCase
	SoftwareUC *usecase.SoftwareUseCase
	EmailUC    *usecase.EmailUseCase
	FilialUC   *usecase.FilialUseCase
	LogUC      *usecase.LogUseCase
	AuthUC     *auth.AuthUseCase
	Reconciler *importer.Reconciler
	Feed       *changefeed.Feed
	JWTSecret  string
}

// Router registra as rotas da API. Leituras exigem view; mutações exigem
// edit; exclusões exigem delete (hard delete é barrado no caso de uso, que
// exige admin); administração de usuários exige admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	view := RequirePermissao(entity.PermView)
	edit := RequirePermissao(entity.PermEdit)
	del := RequirePermissao(entity.PermDelete)
	admin := RequirePermissao(entity.PermAdmin)

	// Ativos (estações de trabalho)
	ativoHandler := NewAtivoHandler(deps.AtivoUC)
	ativos := protected.Group("/ativos")
	ativos.Post("/", edit, ativoHandler.Create)
	ativos.Get("/", view, ativoHandler.List)
	ativos.Get("/:id", view, ativoHandler.GetByID)
	ativos.Put("/:id", edit, ativoHandler.Update)
	ativos.Delete("/:id", del, ativoHandler.Delete)

	// Celulares
	celularHandler := NewCelularHandler(deps.CelularUC)
	celulares := protected.Group("/celulares")
	celulares.Post("/", edit, celularHandler.Create)
	celulares.Get("/", view, celularHandler.List)
	celulares.Get("/:id", view, celularHandler.GetByID)
	celulares.Put("/:id", edit, celularHandler.Update)
	celulares.Delete("/:id", del, celularHandler.Delete)

	// Softwares (licenças)
	softwareHandler := NewSoftwareHandler(deps.SoftwareUC)
	softwares := protected.Group("/softwares")
	softwares.Post("/", edit, softwareHandler.Create)
	softwares.Get("/", view, softwareHandler.List)
	softwares.Get("/vencendo", view, softwareHandler.ListVencendo)
	softwares.Get("/:id", view, softwareHandler.GetByID)
	softwares.Put("/:id", edit, softwareHandler.Update)
	softwares.Delete("/:id", del, softwareHandler.Delete)
	ativos.Put("/:id/softwares", edit, softwareHandler.VincularLote)

	// Emails
	emailHandler := NewEmailHandler(deps.EmailUC)
	emails := protected.Group("/emails")
	emails.Post("/", edit, emailHandler.Create)
	emails.Get("/", view, emailHandler.List)
	emails.Get("/:id", view, emailHandler.GetByID)
	emails.Put("/:id", edit, emailHandler.Update)
	emails.Delete("/:id", del, emailHandler.Delete)

	// Filiais
	filialHandler := NewFilialHandler(deps.FilialUC)
	filiais := protected.Group("/filiais")
	filiais.Post("/", edit, filialHandler.Create)
	filiais.Get("/", view, filialHandler.List)
	filiais.Put("/:id", edit, filialHandler.Update)
	filiais.Delete("/:id", del, filialHandler.Delete)
	protected.Get("/responsaveis", view, filialHandler.ListResponsaveis)

	// Trilho de auditoria (leitura)
	logHandler := NewLogHandler(deps.LogUC)
	logs := protected.Group("/logs")
	logs.Get("/", view, logHandler.List)
	logs.Get("/estatisticas", view, logHandler.Estatisticas)
	logs.Get("/entidade/:id", view, logHandler.ListByEntidade)

	// Importação CSV
	importHandler := NewImportHandler(deps.Reconciler)
	importar := protected.Group("/importar", edit)
	importar.Post("/ativos", importHandler.Ativos)
	importar.Post("/celulares", importHandler.Celulares)
	importar.Post("/softwares", importHandler.Softwares)
	importar.Post("/emails", importHandler.Emails)

	// Versões de mudança por coleção
	changesHandler := NewChangesHandler(deps.Feed)
	protected.Get("/changes", view, changesHandler.Versoes)

	// Usuários (admin)
	protected.Post("/usuarios", admin, authHandler.Register)
	protected.Get("/usuarios", admin, authHandler.ListUsuarios)
	protected.Put("/usuarios/:id", admin, authHandler.UpdateUsuario)
	protected.Delete("/usuarios/:id", admin, authHandler.DeleteUsuario)
	protected.Get("/funcionarios", view, authHandler.ListFuncionarios)
}
