package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/seyirtepe/seyirtepe-backend/config"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/controller"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	"github.com/seyirtepe/seyirtepe-backend/internal/db"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
	"github.com/seyirtepe/seyirtepe-backend/internal/router"
	"github.com/seyirtepe/seyirtepe-backend/internal/scheduler"
	"github.com/seyirtepe/seyirtepe-backend/internal/storage"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Seyirtepe Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	reservationRepo := repository.NewReservationRepository(db.GetDB())
	galleryRepo := repository.NewGalleryRepository(db.GetDB())
	settingsRepo := repository.NewSiteSettingsRepository(db.GetDB())

	// Initialize storage backends
	s3Store := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
		cfg.S3.Timeout,
	)
	localStore := storage.NewLocalStorage(cfg.Upload.Dir, "/uploads")

	// Initialize services
	authService := service.NewAuthService(cfg.Admin, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	mediaService := service.NewMediaService(s3Store, localStore, cfg.Upload.MaxSize)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	orderService := service.NewOrderService(orderRepo)
	reservationService := service.NewReservationService(reservationRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	settingsService := service.NewSiteSettingsService(settingsRepo, mediaService)
	reportService := service.NewReportService(orderRepo, reservationRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	categoryController := controller.NewCategoryController(categoryService)
	productController := controller.NewProductController(productService, mediaService)
	orderController := controller.NewOrderController(orderService, reportService)
	reservationController := controller.NewReservationController(reservationService, reportService)
	galleryController := controller.NewGalleryController(galleryService, mediaService)
	settingsController := controller.NewSiteSettingsController(settingsService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start the daily summary scheduler
	summaryScheduler := scheduler.NewSummaryScheduler(reportService)
	if err := summaryScheduler.Start(); err != nil {
		logger.Fatal("Failed to start summary scheduler", err)
	}
	defer summaryScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		categoryController,
		productController,
		orderController,
		reservationController,
		galleryController,
		settingsController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
