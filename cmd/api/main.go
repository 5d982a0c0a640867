package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mainak-github/sk-electricks-api/internal/application/service"
	"github.com/mainak-github/sk-electricks-api/internal/config"
	"github.com/mainak-github/sk-electricks-api/internal/infrastructure/database"
	"github.com/mainak-github/sk-electricks-api/internal/infrastructure/repository"
	"github.com/mainak-github/sk-electricks-api/internal/presentation/http/handler"
	"github.com/mainak-github/sk-electricks-api/internal/presentation/http/routes"
	"github.com/mainak-github/sk-electricks-api/pkg/oauth"
	"github.com/mainak-github/sk-electricks-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize Google OAuth service
	googleService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.App.FrontendURL + "/auth/callback",
		FrontendErrorURL:   cfg.App.FrontendURL + "/login",
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	serviceJobRepo := repository.NewServiceJobRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleService)
	settingsService := service.NewSettingsService(settingsRepo)
	itemService := service.NewItemService(itemRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	saleService := service.NewSaleService(saleRepo, customerRepo, itemRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, supplierRepo, itemRepo)
	serviceJobService := service.NewServiceJobService(serviceJobRepo, customerRepo, itemRepo)
	expenseService := service.NewExpenseService(expenseRepo, supplierRepo, itemRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService, googleService),
		Item:       handler.NewItemHandler(itemService),
		Category:   handler.NewCategoryHandler(categoryService),
		Customer:   handler.NewCustomerHandler(customerService),
		Supplier:   handler.NewSupplierHandler(supplierService),
		Sale:       handler.NewSaleHandler(saleService),
		Purchase:   handler.NewPurchaseHandler(purchaseService),
		ServiceJob: handler.NewServiceJobHandler(serviceJobService),
		Expense:    handler.NewExpenseHandler(expenseService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Settings:   handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
