package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentwheels/internal/config"
	"rentwheels/internal/handlers"
	"rentwheels/internal/middleware"
	"rentwheels/internal/repositories/mongodb"
	"rentwheels/internal/utils"
	"rentwheels/pkg/database"
	"rentwheels/pkg/logger"
	"rentwheels/pkg/storage"
	"rentwheels/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  "json",
		Output:  "stdout",
		AppName: cfg.App.Name,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}

	if err := database.EnsureIndexes(db.Database); err != nil {
		log.WithError(err).Warn("failed to ensure indexes")
	}

	// File store; a missing upload directory is not fatal, Save retries
	store, err := storage.NewLocalStorage(afero.NewOsFs(), cfg.Storage.UploadDir, utils.UploadURLPrefix)
	if err != nil {
		log.WithError(err).Warn("failed to prepare upload directory")
	}

	// Repositories
	vehicleRepo := mongodb.NewVehicleRepository(db.Database)
	reservationRepo := mongodb.NewReservationRepository(db.Database)

	// Handlers
	vehicleHandler := handlers.NewVehicleHandler(vehicleRepo, log)
	reservationHandler := handlers.NewReservationHandler(reservationRepo, log)
	uploadHandler := handlers.NewUploadHandler(store, storage.NewFilenameGenerator(), log)

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggerMiddleware(log))

	// API routes, restricted to the configured front-end origins
	api := router.Group("/api")
	api.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	{
		routes.SetupVehicleRoutes(api, vehicleHandler)
		routes.SetupReservationRoutes(api, reservationHandler)
		routes.SetupUploadRoutes(api, uploadHandler)
	}

	// Stored uploads live outside the API CORS policy
	routes.SetupFileRoutes(router, uploadHandler)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": utils.FormatTimeISO(time.Now()),
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	if err := db.Close(); err != nil {
		log.WithError(err).Error("failed to disconnect from MongoDB")
	}

	log.Info("server stopped")
}
