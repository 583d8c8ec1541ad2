package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/config"
	"github.com/sangkips/gestao-api/internal/infrastructure/database"
	"github.com/sangkips/gestao-api/internal/infrastructure/repository"
	"github.com/sangkips/gestao-api/internal/metrics"
	"github.com/sangkips/gestao-api/internal/presentation/http/handler"
	"github.com/sangkips/gestao-api/internal/presentation/http/middleware"
	"github.com/sangkips/gestao-api/internal/presentation/http/routes"
	"github.com/sangkips/gestao-api/pkg/logger"
	"github.com/sangkips/gestao-api/pkg/utils"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// @title           Gestão API
// @version         1.0
// @description     Sales, agenda and cash book for a small water-purifier business.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Must(logger.Options{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: !cfg.App.IsProduction(),
	})
	defer func() { _ = log.Sync() }()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	if err := database.SeedDefaultData(db, cfg.Seed, log); err != nil {
		log.Warn("failed to seed default data", zap.Error(err))
	}

	loc := cfg.App.Location()
	clock := service.SystemClock(loc)
	m := metrics.New()

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	financialRepo := repository.NewFinancialRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, vendorRepo, jwtManager, log)
	clientService := service.NewClientService(clientRepo, clock)
	productService := service.NewProductService(productRepo, clock)
	catalogService := service.NewCatalogService(serviceRepo)
	vendorService := service.NewVendorService(vendorRepo, m, log, clock)
	saleService := service.NewSaleService(saleRepo, vendorRepo, clientRepo, productRepo, serviceRepo, m, log, clock)
	quotationService := service.NewQuotationService(quotationRepo, clientRepo, productRepo, serviceRepo, saleService, m, clock)
	visitService := service.NewVisitService(visitRepo, clientRepo, clock)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, clientRepo, vendorRepo, clock)
	financialService := service.NewFinancialService(financialRepo, clock)
	companyService := service.NewCompanyService(companyRepo, log)
	dashboardService := service.NewDashboardService(clientRepo, productRepo, vendorRepo, saleRepo, visitRepo, maintenanceRepo, clock)

	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Client:      handler.NewClientHandler(clientService, loc),
		Product:     handler.NewProductHandler(productService),
		Service:     handler.NewServiceHandler(catalogService),
		Vendor:      handler.NewVendorHandler(vendorService),
		Sale:        handler.NewSaleHandler(saleService, loc),
		Quotation:   handler.NewQuotationHandler(quotationService, loc),
		Visit:       handler.NewVisitHandler(visitService, loc),
		Maintenance: handler.NewMaintenanceHandler(maintenanceService, loc),
		Financial:   handler.NewFinancialHandler(financialService, loc),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Money:       handler.NewMoneyHandler(),
		Company:     handler.NewCompanyHandler(companyService),
	}

	window := time.Duration(cfg.RateLimit.Duration) * time.Second
	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Requests: cfg.RateLimit.Requests,
		Window:   window,
	})
	// login and register are tighter: a tenth of the budget per IP
	authLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Requests: max(cfg.RateLimit.Requests/10, 5),
		Window:   window,
	})
	go limiter.Run(ctx)
	go authLimiter.Run(ctx)
	go middleware.IdempotencyJanitor(ctx, idempotencyRepo, cfg.Idempotency.CleanupInterval, log)

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Metrics:         m,
		Log:             log,
		HealthCheck:     func() error { return database.Ping(db) },
		AuthLimiter:     authLimiter,
		Limiter:         limiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
			zap.String("timezone", loc.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
