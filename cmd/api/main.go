package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TopsellHQ/topsell_api/internal/cache"
	"github.com/TopsellHQ/topsell_api/internal/config"
	"github.com/TopsellHQ/topsell_api/internal/database"
	"github.com/TopsellHQ/topsell_api/internal/handler"
	"github.com/TopsellHQ/topsell_api/internal/middleware"
	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/repository"
	"github.com/TopsellHQ/topsell_api/internal/service"
	"github.com/TopsellHQ/topsell_api/internal/utils"
	"github.com/TopsellHQ/topsell_api/internal/worker"
	"github.com/TopsellHQ/topsell_api/pkg/dtone"
)

// main is the application entrypoint for the Topsell storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger and JWT signing
	setupLogger(cfg.Env)
	utils.InitJWT(cfg.JWTSecret, cfg.JWTTTL)
	log.Info().Str("env", cfg.Env).Msg("starting topsell api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize catalog snapshot cache
	catalogCache := cache.NewCatalogCache(redisClient, cfg.Catalog.CacheTTL)

	// 4. Initialize the upstream catalog providers
	dtoneClient := dtone.NewClient(cfg.DTOne.BaseURL, cfg.DTOne.APIKey, cfg.DTOne.APISecret)
	liveProvider := service.NewDTOneCatalogProvider(dtoneClient, cfg.Catalog.PageSize)
	sandboxProvider := service.NewSandboxCatalogProvider()

	// 5. Initialize repositories
	orgRepo := repository.NewOrganizationRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)
	ruleRepo := repository.NewPricingRuleRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// 6. Initialize services
	authSvc := service.NewAuthService(orgRepo)
	adminAuthSvc := service.NewAdminAuthService(adminRepo)
	orgSvc := service.NewOrganizationService(orgRepo)
	pricingAdminSvc := service.NewPricingAdminService(ruleRepo, discountRepo, settingsRepo)
	catalogSvc := service.NewCatalogService(catalogCache, liveProvider, sandboxProvider)
	storefrontSvc := service.NewStorefrontService(catalogSvc, ruleRepo, discountRepo, settingsRepo, cfg.Storefront.MaxListingItems)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:       handler.NewHealthHandler(db, redisClient),
		Storefront:   handler.NewStorefrontHandler(storefrontSvc),
		Country:      handler.NewCountryHandler(),
		Auth:         handler.NewAuthHandler(adminAuthSvc),
		Organization: handler.NewOrganizationHandler(orgSvc),
		PricingRule:  handler.NewPricingRuleHandler(orgSvc, pricingAdminSvc),
		Discount:     handler.NewDiscountHandler(orgSvc, pricingAdminSvc),
		Settings:     handler.NewSettingsHandler(orgSvc, pricingAdminSvc),
		Balance:      handler.NewBalanceHandler(dtoneClient),
	}

	// 8. Initialize middleware
	authMw := middleware.NewAuthMiddleware(authSvc)
	jwtMw := middleware.NewJWTMiddleware()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw, jwtMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start the catalog sync worker
	go worker.NewCatalogSyncWorker(catalogSvc, cfg.Worker.CatalogSyncInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health       *handler.HealthHandler
	Storefront   *handler.StorefrontHandler
	Country      *handler.CountryHandler
	Auth         *handler.AuthHandler
	Organization *handler.OrganizationHandler
	PricingRule  *handler.PricingRuleHandler
	Discount     *handler.DiscountHandler
	Settings     *handler.SettingsHandler
	Balance      *handler.BalanceHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMiddleware *middleware.AuthMiddleware, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/health", handlers.Health.GetHealth)

	// Storefront routes (protected with organization API key)
	storefront := router.Group("/v1/storefront")
	storefront.Use(authMiddleware.Handle())
	{
		storefront.GET("/products", handlers.Storefront.ListProducts)
		storefront.GET("/products/:sku/price", handlers.Storefront.GetProductPrice)
		storefront.POST("/quotes", handlers.Storefront.CreateQuote)
	}

	// Destination reference data (protected with organization API key)
	router.GET("/v1/countries", authMiddleware.Handle(), handlers.Country.ListCountries)

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Admin account management
		admin.POST("/admins", jwtMiddleware.RequireRole(models.RoleSuperAdmin), handlers.Auth.CreateAdmin)

		// Organization management
		admin.POST("/organizations", jwtMiddleware.RequireRole(models.RoleSuperAdmin), handlers.Organization.CreateOrganization)
		admin.GET("/organizations", handlers.Organization.ListOrganizations)
		admin.GET("/organizations/:id", handlers.Organization.GetOrganization)
		admin.PUT("/organizations/:id", handlers.Organization.UpdateOrganization)
		admin.POST("/organizations/:id/regenerate", jwtMiddleware.RequireRole(models.RoleSuperAdmin), handlers.Organization.RegenerateKeys)

		// Markup rules
		admin.GET("/organizations/:id/pricing-rules", handlers.PricingRule.ListRules)
		admin.POST("/organizations/:id/pricing-rules", handlers.PricingRule.CreateRule)
		admin.GET("/organizations/:id/pricing-rules/:ruleID", handlers.PricingRule.GetRule)
		admin.PUT("/organizations/:id/pricing-rules/:ruleID", handlers.PricingRule.UpdateRule)
		admin.DELETE("/organizations/:id/pricing-rules/:ruleID", handlers.PricingRule.DeleteRule)

		// Discount registry
		admin.GET("/organizations/:id/discounts", handlers.Discount.ListDiscounts)
		admin.POST("/organizations/:id/discounts", handlers.Discount.CreateDiscount)
		admin.GET("/organizations/:id/discounts/:discountID", handlers.Discount.GetDiscount)
		admin.PUT("/organizations/:id/discounts/:discountID", handlers.Discount.UpdateDiscount)
		admin.DELETE("/organizations/:id/discounts/:discountID", handlers.Discount.DeleteDiscount)
		admin.POST("/organizations/:id/discounts/:discountID/redemptions", handlers.Discount.RedeemDiscount)

		// Storefront and resale settings
		admin.GET("/organizations/:id/settings/storefront", handlers.Settings.GetStorefrontSettings)
		admin.PUT("/organizations/:id/settings/storefront", handlers.Settings.UpdateStorefrontSettings)
		admin.GET("/organizations/:id/resale/:sku", handlers.Settings.GetResaleSettings)
		admin.PUT("/organizations/:id/resale/:sku", handlers.Settings.UpdateResaleSettings)
		admin.DELETE("/organizations/:id/resale/:sku", handlers.Settings.DeleteResaleSettings)

		// Upstream account balances
		admin.GET("/balances", handlers.Balance.GetBalances)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}
