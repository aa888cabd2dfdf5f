package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/refricriltecno/inventario-ti/internal/application/auth"
	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
	"github.com/refricriltecno/inventario-ti/internal/application/importer"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/application/vinculo"
	"github.com/refricriltecno/inventario-ti/internal/infrastructure/postgres"
	httpRouter "github.com/refricriltecno/inventario-ti/internal/interfaces/http"
	"github.com/refricriltecno/inventario-ti/pkg/config"
	"github.com/refricriltecno/inventario-ti/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	ativoRepo := postgres.NewAtivoRepository(pool)
	celularRepo := postgres.NewCelularRepository(pool)
	softwareRepo := postgres.NewSoftwareRepository(pool)
	emailRepo := postgres.NewEmailRepository(pool)
	filialRepo := postgres.NewFilialRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	logRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	feed := changefeed.New()
	resolver := vinculo.NewResolver(ativoRepo, celularRepo)

	ativoUC := usecase.NewAtivoUseCase(ativoRepo, txRunner, feed)
	celularUC := usecase.NewCelularUseCase(celularRepo, txRunner, feed)
	softwareUC := usecase.NewSoftwareUseCase(softwareRepo, ativoRepo, txRunner, feed)
	emailUC := usecase.NewEmailUseCase(emailRepo, resolver, txRunner, feed)
	filialUC := usecase.NewFilialUseCase(filialRepo, ativoRepo, celularRepo, txRunner, feed)
	logUC := usecase.NewLogUseCase(logRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, feed)

	reconciler := importer.New(importer.Deps{
		Ativos:     ativoRepo,
		Celulares:  celularRepo,
		Softwares:  softwareRepo,
		Emails:     emailRepo,
		Filiais:    filialRepo,
		AtivoUC:    ativoUC,
		CelularUC:  celularUC,
		SoftwareUC: softwareUC,
		EmailUC:    emailUC,
		FilialUC:   filialUC,
		Resolver:   resolver,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventário TI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AtivoUC:    ativoUC,
		CelularUC:  celularUC,
		SoftwareUC: softwareUC,
		EmailUC:    emailUC,
		FilialUC:   filialUC,
		LogUC:      logUC,
		AuthUC:     authUC,
		Reconciler: reconciler,
		Feed:       feed,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
