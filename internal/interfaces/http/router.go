package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/auth"
	"github.com/jhoicas/cafetero-api/internal/application/catalog"
	"github.com/jhoicas/cafetero-api/internal/application/ledger"
	"github.com/jhoicas/cafetero-api/internal/application/listing"
	"github.com/jhoicas/cafetero-api/internal/application/usecase"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	LedgerUC  *ledger.LedgerUseCase
	ListingUC *listing.ListingUseCase
	CatalogUC *catalog.CatalogUseCase
	SellerUC  *usecase.SellerUseCase
	ReportUC  *usecase.ReportUseCase
	Sessions  *SessionManager
	Log       *logger.Logger
}

// Router registra las rutas de la API. Toda ruta pasa por LoadSession; las
// mutaciones exigen además el token CSRF de la sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", deps.Sessions.LoadSession())
	csrf := deps.Sessions.RequireCSRF()

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Log)
	api.Get("/csrf", authHandler.CSRFToken)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", csrf, authHandler.Login)
	authGroup.Post("/register", csrf, authHandler.Register)
	authGroup.Post("/logout", csrf, authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Catálogo público (sin sesión)
	catalogHandler := NewCatalogHandler(deps.ListingUC, deps.ReportUC, deps.Log)
	typeHandler := NewCoffeeTypeHandler(deps.CatalogUC, deps.Log)
	catalogGroup := api.Group("/catalog")
	catalogGroup.Get("/stocks", catalogHandler.Stocks)
	catalogGroup.Get("/stats", catalogHandler.Stats)
	catalogGroup.Get("/coffee-types", typeHandler.List)
	catalogGroup.Get("/locations", typeHandler.Locations)

	// Vendedor autenticado
	stockHandler := NewStockHandler(deps.LedgerUC, deps.ListingUC, deps.Log)
	dashboardHandler := NewDashboardHandler(deps.ReportUC, deps.Log)
	sellerGroup := api.Group("/seller", RequireRole(entity.RoleSeller))
	sellerGroup.Get("/stocks", stockHandler.List)
	sellerGroup.Post("/stocks", csrf, stockHandler.Add)
	sellerGroup.Put("/stocks/:id", csrf, stockHandler.Set)
	sellerGroup.Delete("/stocks/:id", csrf, stockHandler.Delete)
	sellerGroup.Get("/dashboard", dashboardHandler.Seller)

	// Admin
	sellerHandler := NewSellerHandler(deps.SellerUC, deps.ListingUC, deps.Log)
	adminGroup := api.Group("/admin", RequireRole(entity.RoleAdmin))
	adminGroup.Get("/dashboard", dashboardHandler.Admin)
	adminGroup.Get("/reports", dashboardHandler.Report)
	adminGroup.Get("/stocks", sellerHandler.Stocks)
	adminGroup.Get("/sellers", sellerHandler.List)
	adminGroup.Get("/sellers/:id", sellerHandler.Detail)
	adminGroup.Get("/coffee-types", typeHandler.List)
	adminGroup.Post("/coffee-types", csrf, typeHandler.Create)
	adminGroup.Put("/coffee-types/:id", csrf, typeHandler.Rename)
	adminGroup.Delete("/coffee-types/:id", csrf, typeHandler.Delete)
}
