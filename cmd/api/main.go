package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bcrcell/bcr-erp/internal/application/auth"
	"github.com/bcrcell/bcr-erp/internal/application/catalog"
	"github.com/bcrcell/bcr-erp/internal/application/customers"
	"github.com/bcrcell/bcr-erp/internal/application/expense"
	"github.com/bcrcell/bcr-erp/internal/application/insights"
	"github.com/bcrcell/bcr-erp/internal/application/inventory"
	"github.com/bcrcell/bcr-erp/internal/application/reporting"
	"github.com/bcrcell/bcr-erp/internal/application/sales"
	"github.com/bcrcell/bcr-erp/internal/application/servicedesk"
	infraai "github.com/bcrcell/bcr-erp/internal/infrastructure/ai"
	"github.com/bcrcell/bcr-erp/internal/infrastructure/localstore"
	httpRouter "github.com/bcrcell/bcr-erp/internal/interfaces/http"
	"github.com/bcrcell/bcr-erp/pkg/config"
	"github.com/bcrcell/bcr-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("memulai aplikasi")

	store, err := localstore.Open(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("buka store snapshot")
	}
	defer store.Close()

	txRunner := localstore.NewTxRunner(store)

	inventoryUC := inventory.NewUseCase(txRunner, store.StockLogs())
	catalogUC := catalog.NewUseCase(txRunner, store.Products())
	salesUC := sales.NewUseCase(txRunner, inventoryUC, store.Sales())
	serviceUC := servicedesk.NewUseCase(txRunner, inventoryUC, store.Services())
	expenseUC := expense.NewUseCase(txRunner, store.Expenses())
	customerUC := customers.NewUseCase(txRunner, store.Customers())
	reportUC := reporting.NewUseCase(
		store.Products(), store.Sales(), store.Services(), store.Expenses(), store.Ledger(),
	)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	insightsUC := insights.NewUseCase(
		geminiSvc,
		store.Products(), store.Sales(), store.Services(), store.Expenses(), store.StockLogs(),
		log,
	)

	authUC, err := auth.NewUseCase(auth.Config{
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassword: cfg.Auth.AdminPassword,
		JWTSecret:     cfg.Auth.JWTSecret,
		ExpMinutes:    cfg.Auth.JWTExpMinutes,
		Issuer:        cfg.Auth.JWTIssuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("siapkan auth admin")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		ServiceUC:   serviceUC,
		ExpenseUC:   expenseUC,
		CustomerUC:  customerUC,
		ReportUC:    reportUC,
		InsightsUC:  insightsUC,
		JWTSecret:   cfg.Auth.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal berhenti diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("penutupan server")
	}

	log.Info().Msg("aplikasi berhenti")
}
