package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/config"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/metrics"
	"github.com/sangkips/gestao-api/internal/presentation/http/handler"
	"github.com/sangkips/gestao-api/internal/presentation/http/middleware"
	"github.com/sangkips/gestao-api/pkg/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Client      *handler.ClientHandler
	Product     *handler.ProductHandler
	Service     *handler.ServiceHandler
	Vendor      *handler.VendorHandler
	Sale        *handler.SaleHandler
	Quotation   *handler.QuotationHandler
	Visit       *handler.VisitHandler
	Maintenance *handler.MaintenanceHandler
	Financial   *handler.FinancialHandler
	Dashboard   *handler.DashboardHandler
	Money       *handler.MoneyHandler
	Company     *handler.CompanyHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Metrics         *metrics.Metrics
	Log             *zap.Logger
	// HealthCheck reports whether the database answers
	HealthCheck func() error
	// AuthLimiter guards the anonymous auth endpoints, keyed by IP
	AuthLimiter *middleware.RateLimiter
	// Limiter guards the authenticated API, keyed by user
	Limiter *middleware.RateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.RecoveryMiddleware(deps.Log))
	router.Use(middleware.LoggerMiddleware(deps.Log, deps.Metrics))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(); err != nil {
				deps.Log.Warn("health check failed", zap.Error(err))
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": deps.Cfg.App.Name,
		})
	})

	if deps.Cfg.Metrics.Enabled && deps.Metrics != nil {
		router.GET(deps.Cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	// docs are generated with: swag init -g cmd/api/main.go
	if !deps.Cfg.App.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h, deps)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		if deps.Limiter != nil {
			protected.Use(deps.Limiter.Middleware())
		}

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := v1.Group("/auth")
	if deps.AuthLimiter != nil {
		auth.Use(deps.AuthLimiter.Middleware())
	}
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/auth/me", h.Auth.Me)
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	protected.GET("/dashboard/stats", middleware.RequirePermission(entity.PermViewDashboard), h.Dashboard.GetStats)

	registerClientRoutes(protected, h)
	registerCatalogRoutes(protected, h)
	registerVendorRoutes(protected, h)
	registerSaleRoutes(protected, h, deps)
	registerQuotationRoutes(protected, h, deps)
	registerScheduleRoutes(protected, h)
	registerFinancialRoutes(protected, h)
	registerMoneyRoutes(protected, h)

	// Everyone reads the header printed on quotations; only admins edit it
	protected.GET("/company", h.Company.Get)
	protected.PUT("/company", middleware.RequireRole(entity.RoleAdmin), h.Company.Update)
}

func idempotent(deps *Deps) gin.HandlerFunc {
	return middleware.Idempotency(middleware.IdempotencyConfig{
		Repo:    deps.IdempotencyRepo,
		TTL:     deps.Cfg.Idempotency.TTL,
		Metrics: deps.Metrics,
		Log:     deps.Log,
	})
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	clients.Use(middleware.RequirePermission(entity.PermManageClients))
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/premium/due-tomorrow", h.Client.PremiumDueTomorrow)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}
}

// Everyone signed in can read the catalog to fill a cart; writes need the
// catalog permission.
func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	manage := middleware.RequirePermission(entity.PermManageCatalog)

	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.POST("", manage, h.Product.Create)
		products.PUT("/:id", manage, h.Product.Update)
		products.DELETE("/:id", manage, h.Product.Delete)
	}

	services := protected.Group("/services")
	{
		services.GET("", h.Service.List)
		services.GET("/:id", h.Service.Get)
		services.POST("", manage, h.Service.Create)
		services.PUT("/:id", manage, h.Service.Update)
		services.DELETE("/:id", manage, h.Service.Delete)
	}
}

func registerVendorRoutes(protected *gin.RouterGroup, h *Handlers) {
	vendors := protected.Group("/vendors")
	vendors.GET("/me/tier", h.Vendor.MyTier)

	admin := vendors.Group("")
	admin.Use(middleware.RequirePermission(entity.PermManageVendors))
	{
		admin.GET("", h.Vendor.List)
		admin.POST("", h.Vendor.Create)
		admin.GET("/:id", h.Vendor.Get)
		admin.PUT("/:id", h.Vendor.Update)
		admin.DELETE("/:id", h.Vendor.Delete)
		admin.GET("/:id/tier", h.Vendor.Tier)
		admin.POST("/:id/commissions/pay", middleware.RequireRole(entity.RoleAdmin), h.Vendor.PayCommission)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequirePermission(entity.PermManageSales))
	{
		sales.GET("", h.Sale.List)
		// A retried submit must not book the sale twice
		sales.POST("", idempotent(deps), h.Sale.Create)
		sales.POST("/preview", h.Sale.Preview)
		sales.GET("/revenue", h.Sale.Revenue)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/cancel", h.Sale.Cancel)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission(entity.PermManageSales))
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", idempotent(deps), h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.PATCH("/:id/status", h.Quotation.UpdateStatus)
		quotations.POST("/:id/convert", idempotent(deps), h.Quotation.Convert)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}
}

func registerScheduleRoutes(protected *gin.RouterGroup, h *Handlers) {
	visits := protected.Group("/visits")
	visits.Use(middleware.RequirePermission(entity.PermManageSchedule))
	{
		visits.GET("", h.Visit.List)
		visits.POST("", h.Visit.Create)
		visits.GET("/upcoming", h.Visit.Upcoming)
		visits.GET("/:id", h.Visit.Get)
		visits.PUT("/:id", h.Visit.Update)
		visits.PATCH("/:id/status", h.Visit.UpdateStatus)
		visits.DELETE("/:id", h.Visit.Delete)
	}

	maintenances := protected.Group("/maintenances")
	maintenances.Use(middleware.RequirePermission(entity.PermManageSchedule))
	{
		maintenances.GET("", h.Maintenance.List)
		maintenances.POST("", h.Maintenance.Create)
		maintenances.GET("/upcoming", h.Maintenance.Upcoming)
		maintenances.GET("/due", h.Maintenance.Due)
		maintenances.GET("/:id", h.Maintenance.Get)
		maintenances.PUT("/:id", h.Maintenance.Update)
		maintenances.PATCH("/:id/status", h.Maintenance.UpdateStatus)
		maintenances.POST("/:id/complete", h.Maintenance.Complete)
		maintenances.DELETE("/:id", h.Maintenance.Delete)
	}
}

func registerFinancialRoutes(protected *gin.RouterGroup, h *Handlers) {
	financial := protected.Group("/financial")
	financial.Use(middleware.RequirePermission(entity.PermManageFinancial))
	{
		financial.GET("/transactions", h.Financial.List)
		financial.POST("/transactions", h.Financial.Create)
		financial.GET("/transactions/:id", h.Financial.Get)
		financial.PUT("/transactions/:id", h.Financial.Update)
		financial.DELETE("/transactions/:id", h.Financial.Delete)
		financial.GET("/summary", h.Financial.Summary)
		financial.GET("/categories", h.Financial.Categories)
	}
}

func registerMoneyRoutes(protected *gin.RouterGroup, h *Handlers) {
	m := protected.Group("/money")
	{
		m.POST("/format", h.Money.Format)
		m.POST("/parse", h.Money.Parse)
		m.POST("/mask", h.Money.Mask)
	}
}
