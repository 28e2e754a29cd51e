/*
Package main - Ward Roster Optimizer Backend Entry Point

==============================================================================
FILE: cmd/api/main.go
==============================================================================

DESCRIPTION:
    This is the main entry point for the roster optimizer backend API server.
    It initializes all core components and starts the HTTP server that handles
    employee management, absence requests, and monthly roster generation.

USER PERSPECTIVE:
    - This file starts the backend server that powers roster planning
    - Planners interact with this indirectly through the frontend web application
    - The server handles: authentication, employee management, absence requests,
      roster generation, and report export (JSON/CSV/PDF/Excel)

DEVELOPER GUIDELINES:
    MODIFY WITH CAUTION - This is a critical system file
    OK to modify: CORS origins, server timeouts, port configuration
    DO NOT modify: Service initialization order, graceful shutdown logic

ARCHITECTURE:
    main() → LoadConfig → SetupLogger → ConnectDB → InitServices → StartServer
                                                                        ↓
    ShutdownServer ← WaitForSignal ← ListenAndServe ← setupRouter()

DEPENDENCIES:
    External:
    - github.com/gin-gonic/gin: HTTP web framework (fast, minimalist)
    - github.com/gin-contrib/cors: Cross-Origin Resource Sharing middleware
    - github.com/sirupsen/logrus: Structured logging library
    - gorm.io/gorm: ORM for database operations

    Internal:
    - dienstplan/internal/api: HTTP handlers and routing
    - dienstplan/internal/config: Application configuration loading
    - dienstplan/internal/database: Database connection and migrations
    - dienstplan/internal/services: Business logic layer

==============================================================================
*/
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dienstplan/internal/api"
	"dienstplan/internal/config"
	"dienstplan/internal/database"
	"dienstplan/internal/logger"
)

func main() {
	cfg, err := config.LoadAppConfig("./configs")
	if err != nil {
		log.Fatalf("Failed to load application configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Env)

	db, err := database.NewConnection(cfg.DatabaseURL, cfg.DBDriver)
	if err != nil {
		appLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate (only in development)
	if cfg.Env == "development" {
		if err := database.Migrate(db); err != nil {
			appLogger.Warnf("Migration failed: %v", err)
		}
	}

	router := setupRouter(cfg, db, appLogger)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Infof("Starting server on port %s in %s mode", strconv.Itoa(cfg.ServerPort), cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatalf("Server forced to shutdown: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	appLogger.Info("Server exited properly")
}

func setupRouter(cfg *config.AppConfig, db *gorm.DB, appLogger *logrus.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// CORS configuration - must be applied BEFORE routes
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:8080", "http://localhost:8081", "http://localhost"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(logger.GinLogger(appLogger))
	router.Use(gin.Recovery())

	healthHandler := api.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadyCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	apiRouter := api.NewRouter(db, cfg)
	apiRouter.Setup(router.Group("/api/v1"))

	return router
}
