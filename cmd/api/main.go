package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invoicefy/invoicefy-api/internal/application/auth"
	"github.com/invoicefy/invoicefy-api/internal/application/billing"
	"github.com/invoicefy/invoicefy-api/internal/application/usecase"
	"github.com/invoicefy/invoicefy-api/internal/domain/layout"
	infrapdf "github.com/invoicefy/invoicefy-api/internal/infrastructure/pdf"
	"github.com/invoicefy/invoicefy-api/internal/infrastructure/postgres"
	httpRouter "github.com/invoicefy/invoicefy-api/internal/interfaces/http"
	"github.com/invoicefy/invoicefy-api/pkg/config"
	"github.com/invoicefy/invoicefy-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	// Repositorios
	businessRepo := postgres.NewBusinessRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	guard := billing.NewOwnershipGuard(clientRepo, invoiceRepo)
	authUC := auth.NewAuthUseCase(txRunner, userRepo, businessRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	businessUC := usecase.NewBusinessUseCase(businessRepo)
	clientUC := billing.NewClientUseCase(guard, clientRepo)
	invoiceUC := billing.NewInvoiceUseCase(guard, clientRepo, invoiceRepo, nil)
	statusUC := billing.NewStatusUseCase(guard, invoiceRepo, nil)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo, nil)

	// PDF: diagramación pura + serialización Maroto con la misma geometría
	geo := layout.DefaultGeometry()
	pdfUC := billing.NewPDFUseCase(
		guard, businessRepo, clientRepo,
		layout.NewRenderer(geo), infrapdf.NewMarotoWriter(geo),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BusinessUC:  businessUC,
		ClientUC:    clientUC,
		InvoiceUC:   invoiceUC,
		StatusUC:    statusUC,
		PDFUC:       pdfUC,
		AnalyticsUC: analyticsUC,
		JWTSecret:   cfg.JWT.Secret,
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
