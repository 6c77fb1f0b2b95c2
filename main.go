package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"fixtrack-backend/cache"
	"fixtrack-backend/config"
	"fixtrack-backend/controllers"
	"fixtrack-backend/routes"
	"fixtrack-backend/services"
)

func main() {
	createAdmin := flag.Bool("create-admin", false,
		"create or reset the admin account from ADMIN_USERNAME, ADMIN_EMAIL and ADMIN_PASSWORD, then exit")
	flag.Parse()

	logger := config.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	authService := services.NewAuthService(db)

	if *createAdmin {
		admin, err := authService.EnsureAdmin(
			os.Getenv("ADMIN_USERNAME"),
			os.Getenv("ADMIN_EMAIL"),
			os.Getenv("ADMIN_PASSWORD"),
		)
		if err != nil {
			logger.Fatal("failed to create admin", zap.Error(err))
		}
		logger.Info("admin account ready", zap.String("username", admin.Username))
		return
	}

	store, err := cache.Connect(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("redis unavailable, tracking cache disabled", zap.Error(err))
	}

	bookingService := services.NewBookingService(db, store, logger, cfg.Shop.TrackingPrefix)
	repairService := services.NewRepairService(db, store, logger)
	reportService := services.NewReportService(db)
	notificationService := services.NewNotificationService(db, logger, cfg)

	notificationService.StartScheduler()

	metrics := config.NewMetrics()

	r := routes.SetupRouter(cfg, logger, metrics, routes.Controllers{
		Auth:      controllers.NewAuthController(authService, cfg),
		Booking:   controllers.NewBookingController(bookingService, notificationService),
		Repair:    controllers.NewRepairController(repairService),
		Dashboard: controllers.NewDashboardController(reportService),
		Report:    controllers.NewReportController(reportService),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
