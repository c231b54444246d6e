package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gstledger/ledger-api/docs" // Swagger docs
	"github.com/gstledger/ledger-api/internal/config"
	"github.com/gstledger/ledger-api/internal/database"
	"github.com/gstledger/ledger-api/internal/handlers"
	"github.com/gstledger/ledger-api/internal/middleware"
	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/internal/repository"
	"github.com/gstledger/ledger-api/internal/services"
	"github.com/gstledger/ledger-api/internal/storage"
	"github.com/gstledger/ledger-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Ledger API
// @version 1.0
// @description REST API for GST invoicing and party ledgers
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry (GlitchTip) when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set: API routes are served without authentication")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Initialize storage
	files, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage", "path", cfg.StoragePath)

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Load the accounting snapshot
	store := services.NewAccountingStore(repos, models.Company{
		Name:      cfg.CompanyName,
		Address:   cfg.CompanyAddress,
		GSTIN:     cfg.CompanyGSTIN,
		State:     cfg.CompanyState,
		StateCode: models.LookupStateCode(cfg.CompanyState),
	})
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.LoadAll(loadCtx); err != nil {
		logger.Warn("Serving empty data until the next refresh", "error", err)
	}
	cancelLoad()

	// Initialize services
	svcs := services.NewServices(store, files)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(router.Group("/api/v1"), h, middleware.Auth(cfg.JWTSecret))

	return router
}
