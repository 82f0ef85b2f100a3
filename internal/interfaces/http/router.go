package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/auth"
	"github.com/bcrcell/bcr-erp/internal/application/catalog"
	"github.com/bcrcell/bcr-erp/internal/application/customers"
	"github.com/bcrcell/bcr-erp/internal/application/expense"
	"github.com/bcrcell/bcr-erp/internal/application/insights"
	"github.com/bcrcell/bcr-erp/internal/application/inventory"
	"github.com/bcrcell/bcr-erp/internal/application/reporting"
	"github.com/bcrcell/bcr-erp/internal/application/sales"
	"github.com/bcrcell/bcr-erp/internal/application/servicedesk"
)

// RouterDeps dependensi router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CatalogUC   *catalog.UseCase
	InventoryUC *inventory.UseCase
	SalesUC     *sales.UseCase
	ServiceUC   *servicedesk.UseCase
	ExpenseUC   *expense.UseCase
	CustomerUC  *customers.UseCase
	ReportUC    *reporting.UseCase
	InsightsUC  *insights.UseCase
	JWTSecret   string
}

// Router mendaftarkan seluruh rute API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (publik)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rute terproteksi (wajib Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produk
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Mutasi stok
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/logs/:productId", inventoryHandler.Logs)

	// Kasir
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Post("/checkout", saleHandler.Checkout)
	salesGroup.Get("/", saleHandler.List)

	// Service HP
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Patch("/:id/status", serviceHandler.ChangeStatus)
	services.Post("/:id/parts", serviceHandler.AddPart)
	services.Delete("/:id/parts/:productId", serviceHandler.RemovePart)
	services.Patch("/:id/notes", serviceHandler.UpdateNotes)

	// Beban operasional
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Pelanggan service
	customersGroup := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customersGroup.Post("/", customerHandler.Create)
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Delete("/:id", customerHandler.Delete)

	// Laporan
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/ledger", reportHandler.Ledger)
	reports.Get("/dashboard", reportHandler.Dashboard)

	// Asisten AI
	aiGroup := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.InsightsUC)
	aiGroup.Post("/insights", aiHandler.Insights)
}
