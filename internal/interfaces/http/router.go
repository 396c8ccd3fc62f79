// Package http boundary HTTP de la API: middlewares, handlers y rutas.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdmgroup/inventory-api/internal/application/identity"
	"github.com/mdmgroup/inventory-api/internal/application/invitation"
	"github.com/mdmgroup/inventory-api/internal/application/provisioning"
	"github.com/mdmgroup/inventory-api/internal/application/reports"
	"github.com/mdmgroup/inventory-api/internal/application/usecase"
	"github.com/mdmgroup/inventory-api/internal/application/valuation"
	"github.com/mdmgroup/inventory-api/internal/domain/rbac"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Resolver        *identity.Resolver
	UserRepo        repository.UserRepository
	UserUC          *usecase.UserUseCase
	ItemUC          *usecase.ItemUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	ProjectUC       *usecase.ProjectUseCase
	MovementUC      *usecase.MovementUseCase
	InvitationUC    *invitation.UseCase
	ProvisioningUC  *provisioning.UseCase
	ValuationUC     *valuation.UseCase
	ReportsUC       *reports.UseCase
	WebhookVerifier PayloadVerifier
	JWTSecret       string
	JWTIssuer       string
	MetricsEnabled  bool
	Log             *logger.Logger
}

// Router registra las rutas de la API.
//
// El Bearer token solo autentica al principal externo; cada grupo protegido
// pasa además por RequireRoles, que resuelve organización y rol contra la BD
// en la petición misma. No hay jerarquía de roles: cada conjunto enumera
// explícitamente quién pasa.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log

	if deps.MetricsEnabled {
		app.Use(MetricsMiddleware())
		app.Get("/metrics", MetricsHandler())
	}

	api := app.Group("/api")

	// Público: verificación de invitaciones y webhook de aprovisionamiento.
	invitationHandler := NewInvitationHandler(deps.InvitationUC, deps.UserRepo, log)
	api.Post("/invitations/verify", invitationHandler.Verify)

	webhookHandler := NewWebhookHandler(deps.WebhookVerifier, deps.ProvisioningUC, log)
	api.Post("/webhooks/provisioning", webhookHandler.HandleProvisioning)

	// Autenticado (Bearer): a partir de aquí todo exige token válido.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	anyRole := RequireRoles(deps.Resolver, rbac.AllOperating, log)
	catalogWrite := RequireRoles(deps.Resolver, rbac.CatalogWrite, log)
	ledgerWrite := RequireRoles(deps.Resolver, rbac.LedgerWrite, log)
	adminOnly := RequireRoles(deps.Resolver, rbac.AdminOnly, log)

	// Identidad y preferencias.
	identityHandler := NewIdentityHandler(deps.UserUC, log)
	protected.Get("/me", anyRole, identityHandler.Me)
	protected.Patch("/user/preferences", anyRole, identityHandler.UpdatePreferences)
	protected.Get("/roles", anyRole, identityHandler.Roles)

	// Invitaciones: crear es de admin; aceptar solo exige usuario
	// aprovisionado (puede no tener membresía aún).
	protected.Post("/invitations", adminOnly, invitationHandler.Create)
	protected.Post("/invitations/accept", invitationHandler.Accept)

	// Catálogo.
	itemHandler := NewItemHandler(deps.ItemUC, log)
	protected.Post("/items", catalogWrite, itemHandler.Create)
	protected.Get("/items", anyRole, itemHandler.List)
	protected.Get("/items/:id", anyRole, itemHandler.GetByID)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, log)
	protected.Post("/warehouses", catalogWrite, warehouseHandler.Create)
	protected.Get("/warehouses", anyRole, warehouseHandler.List)
	protected.Get("/warehouses/:id", anyRole, warehouseHandler.GetByID)
	protected.Post("/warehouses/:id/bins", catalogWrite, warehouseHandler.CreateBin)
	protected.Get("/warehouses/:id/bins", anyRole, warehouseHandler.ListBins)

	projectHandler := NewProjectHandler(deps.ProjectUC, log)
	protected.Post("/projects", catalogWrite, projectHandler.Create)
	protected.Get("/projects", anyRole, projectHandler.List)
	protected.Get("/projects/:id", anyRole, projectHandler.GetByID)

	// Ledger.
	movementHandler := NewMovementHandler(deps.MovementUC, log)
	protected.Post("/movements", ledgerWrite, movementHandler.Register)
	protected.Get("/movements", anyRole, movementHandler.List)

	// Valorización.
	valuationHandler := NewValuationHandler(deps.ValuationUC, log)
	protected.Get("/valuation/summary", anyRole, valuationHandler.Summary)
	protected.Get("/valuation/project/:id", anyRole, valuationHandler.ByProject)

	// Reportes.
	reportHandler := NewReportHandler(deps.ReportsUC, log)
	protected.Get("/reports/valuation.xlsx", anyRole, reportHandler.ValuationXLSX)
	protected.Get("/reports/valuation.pdf", anyRole, reportHandler.ValuationPDF)
}
