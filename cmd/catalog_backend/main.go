package main

import (
	"log/slog"
	"os"

	"github.com/finlocale/currency_catalog/internal/core/services"
	"github.com/finlocale/currency_catalog/internal/handlers"
	"github.com/finlocale/currency_catalog/internal/middleware"
	"github.com/finlocale/currency_catalog/internal/platform/config"
	"github.com/finlocale/currency_catalog/internal/platform/validation"
	"github.com/finlocale/currency_catalog/internal/repositories/cldr"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Currency Catalog API
// @version 1.0
// @description Canonical metadata for ISO 4217 and private-use currencies, per locale.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The built-in dataset is embedded; this only fails on a broken build.
	dataRepo, err := cldr.NewRepository()
	if err != nil {
		logger.Error("Failed to initialize currency dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Currency dataset ready", slog.Int("locales", len(dataRepo.KnownLocales())))

	serviceContainer := services.NewServiceContainer(cfg, dataRepo)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	validation.RegisterCustomValidators()

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if cfg.CORSEnabled {
		r.Use(cors.Default())
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
