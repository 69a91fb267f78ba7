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

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/documents"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/entitlement"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/templates"
	infrapdf "github.com/Mekhanofficial/ledgerly-app-sub001/internal/infrastructure/pdf"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/infrastructure/postgres"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/infrastructure/remote"
	httpRouter "github.com/Mekhanofficial/ledgerly-app-sub001/internal/interfaces/http"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/config"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Entitlement Store sobre el almacén local clave/valor
	kvRepo := postgres.NewLocalKVRepository(pool)
	store := entitlement.NewStore(kvRepo, log.Component("entitlement"))

	// Catálogo remoto — opcional; sin URL la app resuelve solo con el
	// catálogo integrado y los entitlements locales.
	var remoteCatalog templates.RemoteCatalog
	if cfg.Templates.RemoteURL != "" {
		remoteCatalog = remote.NewHTTPCatalogClient(
			cfg.Templates.RemoteURL,
			time.Duration(cfg.Templates.TimeoutSeconds)*time.Second,
		)
	}
	templatesUC := templates.NewUseCase(remoteCatalog, store, log.Component("templates"))

	// Render de documentos (HTML + PDF con Maroto)
	pdfGenerator := infrapdf.NewMarotoDocumentGenerator()
	documentsUC := documents.NewUseCase(templatesUC, pdfGenerator, documents.Config{
		CurrencyCode: cfg.Document.Currency,
		Locale:       cfg.Document.Locale,
	}, log.Component("documents"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ledgerly API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TemplatesUC: templatesUC,
		DocumentsUC: documentsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
