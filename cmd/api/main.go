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

	inventoryapi "github.com/mdmgroup/inventory-api"
	"github.com/mdmgroup/inventory-api/internal/application/identity"
	"github.com/mdmgroup/inventory-api/internal/application/invitation"
	"github.com/mdmgroup/inventory-api/internal/application/ports"
	"github.com/mdmgroup/inventory-api/internal/application/provisioning"
	"github.com/mdmgroup/inventory-api/internal/application/reports"
	"github.com/mdmgroup/inventory-api/internal/application/usecase"
	"github.com/mdmgroup/inventory-api/internal/application/valuation"
	infraexcel "github.com/mdmgroup/inventory-api/internal/infrastructure/excel"
	inframail "github.com/mdmgroup/inventory-api/internal/infrastructure/mail"
	infrapdf "github.com/mdmgroup/inventory-api/internal/infrastructure/pdf"
	"github.com/mdmgroup/inventory-api/internal/infrastructure/postgres"
	infrawebhook "github.com/mdmgroup/inventory-api/internal/infrastructure/webhook"
	httpRouter "github.com/mdmgroup/inventory-api/internal/interfaces/http"
	"github.com/mdmgroup/inventory-api/pkg/config"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString(), inventoryapi.Migrations); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	valuationRepo := postgres.NewValuationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := identity.NewResolver(userRepo, membershipRepo)

	var mailer ports.InvitationMailer
	if cfg.SMTP.Enabled() {
		mailer = inframail.NewInvitationMailer(cfg.SMTP)
	}

	verifier, err := infrawebhook.NewVerifier(cfg.Webhook.SigningSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("secreto de webhook")
	}

	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo, itemRepo, warehouseRepo)
	invitationUC := invitation.NewUseCase(invitationRepo, orgRepo, txRunner, mailer, log)
	provisioningUC := provisioning.NewUseCase(txRunner, cfg.App.DefaultOrgName, log)
	valuationUC := valuation.NewUseCase(valuationRepo)
	reportsUC := reports.NewUseCase(valuationRepo, infraexcel.NewValuationExporter(), infrapdf.NewValuationPDFGenerator())

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Resolver:        resolver,
		UserRepo:        userRepo,
		UserUC:          userUC,
		ItemUC:          itemUC,
		WarehouseUC:     warehouseUC,
		ProjectUC:       projectUC,
		MovementUC:      movementUC,
		InvitationUC:    invitationUC,
		ProvisioningUC:  provisioningUC,
		ValuationUC:     valuationUC,
		ReportsUC:       reportsUC,
		WebhookVerifier: verifier,
		JWTSecret:       cfg.Auth.JWTSecret,
		JWTIssuer:       cfg.Auth.Issuer,
		MetricsEnabled:  cfg.Metrics.Enabled,
		Log:             log,
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
