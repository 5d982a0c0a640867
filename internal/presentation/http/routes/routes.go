package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mainak-github/sk-electricks-api/internal/config"
	domainRepo "github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/internal/presentation/http/handler"
	"github.com/mainak-github/sk-electricks-api/internal/presentation/http/middleware"
	"github.com/mainak-github/sk-electricks-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Item       *handler.ItemHandler
	Category   *handler.CategoryHandler
	Customer   *handler.CustomerHandler
	Supplier   *handler.SupplierHandler
	Sale       *handler.SaleHandler
	Purchase   *handler.PurchaseHandler
	ServiceJob *handler.ServiceJobHandler
	Expense    *handler.ExpenseHandler
	Dashboard  *handler.DashboardHandler
	Settings   *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Retried document saves must not create duplicates
		protected.Use(middleware.Idempotency(deps.IdempotencyRepo))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile routes
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Catalog
	registerItemRoutes(protected, h)
	registerCategoryRoutes(protected, h)

	// Parties
	registerCustomerRoutes(protected, h)
	registerSupplierRoutes(protected, h)

	// Documents
	registerSaleRoutes(protected, h)
	registerPurchaseRoutes(protected, h)
	registerServiceJobRoutes(protected, h)
	registerExpenseRoutes(protected, h)
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.POST("/:id/stock", h.Item.AdjustStock)
		items.DELETE("/:id", middleware.RequireAdmin(), h.Item.Delete)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", middleware.RequireAdmin(), h.Category.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireAdmin(), h.Customer.Delete)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", middleware.RequireAdmin(), h.Supplier.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/due", h.Sale.ListDue)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.PATCH("/:id/status", h.Sale.UpdateStatus)
		sales.POST("/:id/pay", h.Sale.PayDue)
		sales.DELETE("/:id", h.Sale.Delete)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchases")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.PUT("/:id", h.Purchase.Update)
		purchases.PATCH("/:id/status", h.Purchase.UpdateStatus)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}
}

func registerServiceJobRoutes(protected *gin.RouterGroup, h *Handlers) {
	jobs := protected.Group("/service-jobs")
	{
		jobs.GET("", h.ServiceJob.List)
		jobs.POST("", h.ServiceJob.Create)
		jobs.GET("/:id", h.ServiceJob.Get)
		jobs.PUT("/:id", h.ServiceJob.Update)
		jobs.PATCH("/:id/status", h.ServiceJob.UpdateStatus)
		jobs.POST("/:id/pay", h.ServiceJob.PayDue)
		jobs.DELETE("/:id", h.ServiceJob.Delete)
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers) {
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.PATCH("/:id/status", h.Expense.UpdateStatus)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}
