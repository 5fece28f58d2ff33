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

	"github.com/invenmovil/inventario-api/internal/application/auth"
	"github.com/invenmovil/inventario-api/internal/application/equipment"
	"github.com/invenmovil/inventario-api/internal/application/inventory"
	"github.com/invenmovil/inventario-api/internal/application/profile"
	"github.com/invenmovil/inventario-api/internal/application/report"
	"github.com/invenmovil/inventario-api/internal/infrastructure/mailer"
	infrapdf "github.com/invenmovil/inventario-api/internal/infrastructure/pdf"
	"github.com/invenmovil/inventario-api/internal/infrastructure/postgres"
	"github.com/invenmovil/inventario-api/internal/infrastructure/storage"
	httpRouter "github.com/invenmovil/inventario-api/internal/interfaces/http"
	"github.com/invenmovil/inventario-api/pkg/config"
	"github.com/invenmovil/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	blobStore, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de storage S3")
	}

	userRepo := postgres.NewUserRepository(pool)
	resetRepo := postgres.NewPasswordResetRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	equipoRepo := postgres.NewEquipoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)

	authUC := auth.NewAuthUseCase(userRepo, resetRepo, smtpMailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	profileUC := profile.NewProfileUseCase(userRepo)
	inventarioUC := inventory.NewInventarioUseCase(inventarioRepo)
	equipoUC := equipment.NewEquipoUseCase(equipoRepo, inventarioRepo, txRunner, blobStore, log)

	// PDF: acta de inventario para descarga desde el panel admin
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewReportUseCase(inventarioRepo, equipoRepo, pdfGenerator)

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
		Title:    "InvenMovil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		InventarioUC: inventarioUC,
		EquipoUC:     equipoUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
