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
	appordertech "github.com/restopos/backend/internal/application/ordertech"
	apppos "github.com/restopos/backend/internal/application/pos"
	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/infrastructure/cache"
	"github.com/restopos/backend/internal/infrastructure/config"
	"github.com/restopos/backend/internal/infrastructure/logger"
	ordertechhttp "github.com/restopos/backend/internal/infrastructure/ordertech"
	"github.com/restopos/backend/internal/infrastructure/persistence"
	"github.com/restopos/backend/internal/interfaces/http/handler"
	"github.com/restopos/backend/internal/interfaces/http/middleware"
	"github.com/restopos/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// idempotencyTTL bounds how long a remote order id is remembered in the
// fast-path cache. The database unique index remains the source of truth.
const idempotencyTTL = 24 * time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting RestoPOS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	attributeGroupRepo := persistence.NewGormAttributeGroupRepository(db.DB)
	attributeValueRepo := persistence.NewGormAttributeValueRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)

	// Provision the inbound API key on first start
	if err := ensureSettings(context.Background(), settingsRepo, cfg, log); err != nil {
		log.Fatal("Failed to provision settings", zap.Error(err))
	}

	// Idempotency store for inbound order creation. Redis when configured,
	// in-process otherwise.
	var idempotencyStore appordertech.OrderIdempotencyStore
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, idempotencyTTL)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Error("Error closing Redis store", zap.Error(err))
			}
		}()
		idempotencyStore = redisStore
		log.Info("Redis idempotency store enabled",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		memStore := cache.NewInMemoryIdempotencyStore(idempotencyTTL)
		defer func() {
			_ = memStore.Close()
		}()
		idempotencyStore = memStore
	}

	// Outbound platform client. The bearer token is read from settings on
	// every call, so a freshly registered token takes effect immediately.
	client := ordertechhttp.NewHTTPClient(cfg.OrderTech.BaseURL, cfg.OrderTech.RequestTimeout, settingsRepo)

	// Order post-processing pipeline (tracking number, receipt reference)
	orderPipeline := apppos.NewOrderPipeline(orderRepo, log)

	// Initialize application services
	addonItemSync := appordertech.NewAddonItemSyncService(
		attributeValueRepo, attributeGroupRepo, companyRepo, settingsRepo, client, log,
	)
	addonGroupSync := appordertech.NewAddonGroupSyncService(
		attributeGroupRepo, attributeValueRepo, companyRepo, settingsRepo, client, addonItemSync, log,
	)
	tenantSync := appordertech.NewTenantSyncService(companyRepo, settingsRepo, client, log)
	branchSync := appordertech.NewBranchSyncService(companyRepo, settingsRepo, client, log)
	categorySync := appordertech.NewCategorySyncService(categoryRepo, companyRepo, settingsRepo, client, log)
	productSync := appordertech.NewProductSyncService(
		productRepo, categoryRepo, attributeGroupRepo, attributeValueRepo, companyRepo,
		settingsRepo, client, log, cfg.OrderTech.SizesAttribute, cfg.App.PublicBaseURL,
	)
	customerSync := appordertech.NewCustomerSyncService(customerRepo, companyRepo, settingsRepo, client, log)

	orderIntake := appordertech.NewOrderIntakeService(
		orderRepo, companyRepo, sessionRepo, customerRepo, productRepo,
		attributeGroupRepo, attributeValueRepo, orderPipeline, idempotencyStore,
		log, cfg.OrderTech.SizesAttribute,
	)
	customerIntake := appordertech.NewCustomerIntakeService(customerRepo, companyRepo, log)
	tokenRegistration := appordertech.NewTokenRegistrationService(settingsRepo, log)
	orderStatusNotifier := appordertech.NewOrderStatusNotifier(orderRepo, settingsRepo, client, log)

	// Initialize HTTP handlers
	registerHandler := handler.NewRegisterHandler(tokenRegistration)
	orderHandler := handler.NewOrderHandler(orderIntake)
	customerHandler := handler.NewCustomerHandler(customerIntake)
	syncHandler := handler.NewSyncHandler(
		tenantSync, branchSync, categorySync, addonGroupSync, productSync, customerSync,
	)
	kitchenHandler := handler.NewKitchenHandler(orderStatusNotifier)
	systemHandler := handler.NewSystemHandler(db.Ping)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Inbound calls authenticate with the locally generated API key
	apiKeyProvider := func(c *gin.Context) string {
		settings, err := settingsRepo.Get(c.Request.Context())
		if err != nil {
			return ""
		}
		return settings.APIKey
	}

	// Health and liveness endpoints (outside API versioning, unauthenticated)
	systemHandler.RegisterRoutes(engine.Group(""))

	// Token registration lives outside the versioned API but still requires
	// the API key: the platform receives the key before issuing its token.
	registration := engine.Group("/api")
	registration.Use(middleware.APIKeyAuth(apiKeyProvider))
	registerHandler.RegisterRoutes(registration)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.APIKeyAuth(apiKeyProvider))
	r.Register(orderHandler).
		Register(customerHandler).
		Register(syncHandler).
		Register(kitchenHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// ensureSettings creates the settings record with a fresh API key when none
// exists yet. The key is logged once so the operator can hand it to the
// platform.
func ensureSettings(ctx context.Context, repo ordertech.SettingsRepository, cfg *config.Config, log *zap.Logger) error {
	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ordertech.ErrSettingsMissing) {
		return err
	}

	settings := &ordertech.Settings{
		Name:    cfg.App.Name,
		BaseURL: cfg.OrderTech.BaseURL,
		APIKey:  ordertech.GenerateAPIKey(),
	}
	if err := repo.Save(ctx, settings); err != nil {
		return err
	}
	log.Info("Generated inbound API key", zap.String("api_key", settings.APIKey))
	return nil
}
