package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	v1 "internship-portal/pdf-export/pdf-export-backend/api/v1"
	"internship-portal/pdf-export/pdf-export-backend/internal/config"
	"internship-portal/pdf-export/pdf-export-backend/internal/middleware"
	"internship-portal/pdf-export/pdf-export-backend/pkg/dates"
)

func main() {
	// .env is optional; deployments may configure purely through the environment.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting service",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// Initialize Certificate Module
	certificatesAPI := v1.SetupCertificatesAPI(v1.CertificatesConfig{
		Version:           cfg.App.Version,
		PrimaryColor:      cfg.Style.PrimaryColor,
		TextColor:         cfg.Style.TextColor,
		FontFamily:        cfg.Style.FontFamily,
		LogoPath:          cfg.Style.LogoPath,
		DateCacheCapacity: dates.DefaultCacheCapacity,
	}, logger)

	// Setup Router
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.Default()

	// CORS Middleware
	router.Use(middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins).Handler())

	// Rate Limiting
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, logger)
		limiter.StartCleanup(10 * time.Minute)
		router.Use(limiter.Handler())
	}

	// Register Routes
	api := router.Group("/api/v1")
	{
		v1.RegisterCertificatesRoutes(api, certificatesAPI)
	}

	// Root Endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.App.Name,
			"version": cfg.App.Version,
			"status":  "running",
			"docs":    "/docs",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
		})
	})

	// Start Server
	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", srv.Addr))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

// newLogger builds the zap logger for the configured environment.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Logging.Development {
		return zap.NewDevelopment()
	}

	zcfg := zap.NewProductionConfig()
	if err := zcfg.Level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return nil, err
	}
	return zcfg.Build()
}
