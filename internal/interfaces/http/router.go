package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invoicefy/invoicefy-api/internal/application/auth"
	"github.com/invoicefy/invoicefy-api/internal/application/billing"
	"github.com/invoicefy/invoicefy-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BusinessUC  *usecase.BusinessUseCase
	ClientUC    *billing.ClientUseCase
	InvoiceUC   *billing.InvoiceUseCase
	StatusUC    *billing.StatusUseCase
	PDFUC       *billing.PDFUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil de empresa (protegido; la empresa sale del token, no de la URL)
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	protected.Get("/business", businessHandler.Get)
	protected.Put("/business", businessHandler.Update)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.StatusUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.Download)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	protected.Get("/dashboard", dashboardHandler.Get)
}
