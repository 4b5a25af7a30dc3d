package main

import (
	"context"
	"net/http"
	"time"

	"realestate-listings/internal/handlers"
	"realestate-listings/internal/middleware"
	"realestate-listings/internal/repositories"
	"realestate-listings/internal/services"
	"realestate-listings/internal/transformers"
	"realestate-listings/internal/validators"
	"realestate-listings/pkg/cache"
	"realestate-listings/pkg/config"
	"realestate-listings/pkg/database"
	"realestate-listings/pkg/logger"
	"realestate-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	PropertyHandler *handlers.PropertyHandler
	UserHandler     *handlers.UserHandler
	RateLimiter     *middleware.RateLimiter
	Reconciler      *services.ReconciliationService
	Server          *http.Server

	// health probes for the three backing stores
	probes map[string]func(context.Context) error

	ctx    context.Context
	cancel context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}
	app.ctx, app.cancel = context.WithCancel(context.Background())

	// prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the relational and document stores
func (a *App) initializeDatabase() {
	if err := database.InitSQL(a.Config); err != nil {
		logger.GlobalLogger.Fatalf("Failed to initialize relational store: %v", err)
	}
	if err := database.InitDB(a.Config); err != nil {
		database.CloseSQL()
		logger.GlobalLogger.Fatalf("Failed to initialize document store: %v", err)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		database.CloseDB()
		database.CloseSQL()
		logger.GlobalLogger.Fatalf("Failed to initialize Redis: %v", err)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup(a.ctx, time.Hour)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	cfg := a.Config

	// repositories
	records := repositories.NewPropertyRecordRepository(database.SQL)
	documents := repositories.NewPropertyDocumentRepository(database.DB, cfg.Database.Collection)
	store := cache.NewStore(cache.RedisClient)
	propertyCache := repositories.NewPropertyCache(store, cfg.Redis.CacheTTL)
	locker := repositories.NewPropertyLocker(store, cfg.Redis.LockTTL)
	userRepo := repositories.NewUserRepository(database.SQL)

	// transformers
	addrTrans := transformers.NewAddressTransformer()
	propTrans := transformers.NewPropertyTransformer()

	// validators
	propertyValidator := validators.NewPropertyValidator()
	userValidator := validators.NewUserValidator()

	// services
	propertyService := services.NewPropertyService(records, documents, propertyCache, locker, propTrans, addrTrans, propertyValidator, cfg.Server.OperationTimeout)
	userService := services.NewUserService(userRepo, userValidator, cfg.JWT.Secret, cfg.JWT.TTL)
	a.Reconciler = services.NewReconciliationService(services.ReconcilerConfig{
		Records:     records,
		Documents:   documents,
		Locker:      locker,
		Cache:       propertyCache,
		Interval:    cfg.Reconciler.Interval,
		StaleAfter:  cfg.Reconciler.StaleAfter,
		WorkerCount: cfg.Reconciler.Workers,
		BatchSize:   cfg.Reconciler.BatchSize,
	})

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService)
	a.UserHandler = handlers.NewUserHandler(userService)

	a.probes = map[string]func(context.Context) error{
		"sql":   records.Ping,
		"mongo": documents.Ping,
		"redis": propertyCache.Ping,
	}
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// start background work that runs beside the HTTP server
func (a *App) startBackground() {
	if a.Config.Reconciler.Enabled {
		logger.GlobalLogger.Printf("Reconciler running every %v", a.Config.Reconciler.Interval)
		a.Reconciler.Start(a.ctx)
	}
}

// cleanup operations
func (a *App) cleanup() {
	a.cancel()
	a.Reconciler.Stop()
	database.CloseDB()
	database.CloseSQL()
	cache.CloseRedis()
}
