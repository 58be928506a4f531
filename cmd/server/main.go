package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	fulfillmentapp "github.com/sellerops/backend/internal/application/fulfillment"
	"github.com/sellerops/backend/internal/infrastructure/config"
	"github.com/sellerops/backend/internal/infrastructure/event"
	"github.com/sellerops/backend/internal/infrastructure/logger"
	"github.com/sellerops/backend/internal/infrastructure/persistence"
	"github.com/sellerops/backend/internal/infrastructure/persistence/models"
	"github.com/sellerops/backend/internal/interfaces/http/handler"
	"github.com/sellerops/backend/internal/interfaces/http/middleware"
	"github.com/sellerops/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	// Connect to database
	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := db.DB.AutoMigrate(
		&models.OrderLineModel{},
		&models.StockRecordModel{},
		&models.CatalogEntryModel{},
		&models.PurchaseLedgerModel{},
	); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Wire the event bus, repositories and services
	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(fulfillmentapp.NewPassAuditHandler(log))
	if err := bus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	orderLineRepo := persistence.NewGormOrderLineRepository(db.DB)
	stockRepo := persistence.NewGormStockRecordRepository(db.DB)
	catalogRepo := persistence.NewGormCatalogRepository(db.DB)
	ledgerRepo := persistence.NewGormPurchaseLedgerRepository(db.DB)

	fulfillmentService := fulfillmentapp.NewFulfillmentService(
		orderLineRepo, stockRepo, catalogRepo, ledgerRepo, bus, log)

	// Setup HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/health"))
	engine.Use(middleware.BodyLimit(1 << 20))
	engine.Use(middleware.RateLimit(middleware.NewRateLimiter(300, time.Minute)))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		overall := "healthy"
		dbState := "ok"
		if err := db.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
			dbState = "error"
		}
		c.JSON(status, gin.H{
			"status":   overall,
			"time":     time.Now().Format(time.RFC3339),
			"database": dbState,
		})
	})

	r := router.NewRouter(engine)
	r.Register(handler.NewFulfillmentHandler(fulfillmentService))
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := bus.Stop(ctx); err != nil {
		log.Warn("Event bus shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
