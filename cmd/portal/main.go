package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"econgov-portal/internal/portal/config"
	delivery "econgov-portal/internal/portal/delivery/http"
	_ "econgov-portal/internal/portal/docs"
	"econgov-portal/internal/portal/repository"
	"econgov-portal/internal/portal/service"
	"econgov-portal/pkg/logger"
	"econgov-portal/pkg/postgres"
	"econgov-portal/pkg/redis"
	"econgov-portal/pkg/telegram"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the portal service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Portal Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis when enabled; the dashboard cache degrades to the
	// in-process cache without it.
	var redisConn *goredis.Client
	if cfg.Redis.Enabled {
		redisCfg := redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err := redis.NewClient(redisCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		redisConn = redisClient.Client
	}

	// Initialize Telegram notifier when enabled
	var notifier telegram.Notifier
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	economicRepo := repository.NewEconomicDataRepository(db.DB)
	articleRepo := repository.NewArticleRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	categoryRepo := repository.NewCategoryRepository(db.DB)
	staffRepo := repository.NewStaffRepository(db.DB)
	programRepo := repository.NewProgramRepository(db.DB)
	resourceRepo := repository.NewResourceRepository(db.DB)

	// Initialize services
	cacheTTL, err := time.ParseDuration(cfg.Dashboard.CacheTTL)
	if err != nil {
		cacheTTL = 5 * time.Minute
	}
	dashboardSvc := service.NewDashboardService(economicRepo, redisConn, appLogger, cacheTTL)
	contentSvc := service.NewContentService(articleRepo, eventRepo, categoryRepo, staffRepo, programRepo, resourceRepo, appLogger)
	seederSvc := service.NewSeederService(economicRepo, contentSvc, articleRepo, eventRepo, categoryRepo, staffRepo, programRepo, resourceRepo, appLogger)
	maintenanceSvc := service.NewMaintenanceService(cfg, seederSvc, dashboardSvc, notifier, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	dashboardHandler := delivery.NewDashboardHandler(dashboardSvc, appLogger, cfg.Dashboard.DefaultPeriods)
	dashboardGroup := apiV1.Group("/dashboard")
	dashboardHandler.RegisterRoutes(dashboardGroup)

	contentHandler := delivery.NewContentHandler(contentSvc, appLogger)
	contentHandler.RegisterRoutes(apiV1)

	adminGroup := apiV1.Group("/admin",
		delivery.AdminTokenMiddleware(cfg.Admin.Token),
		delivery.RateLimitMiddleware(cfg.Admin.RequestsPerMinute, cfg.Admin.Burst))
	contentHandler.RegisterAdminRoutes(adminGroup)

	maintenanceHandler := delivery.NewMaintenanceHandler(maintenanceSvc, appLogger)
	maintenanceHandler.RegisterRoutes(adminGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Economic Governance Portal API
// @version 1.0
// @description Indicator dashboards, content and administrator maintenance actions.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "portal"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing portal CLI: %s\n", err)
		os.Exit(1)
	}
}
