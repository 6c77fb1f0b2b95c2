package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fixtrack-backend/config"
	"fixtrack-backend/controllers"
	"fixtrack-backend/utils"
)

// Controllers groups the handler objects wired up in main.
type Controllers struct {
	Auth      *controllers.AuthController
	Booking   *controllers.BookingController
	Repair    *controllers.RepairController
	Dashboard *controllers.DashboardController
	Report    *controllers.ReportController
}

func SetupRouter(cfg *config.Config, logger *zap.Logger, metrics *config.Metrics, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CorsAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger(logger))
	r.Use(metrics.Middleware())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)

		auth.Use(utils.AuthMiddleware(cfg.JWT.Secret))
		auth.GET("/me", ctrl.Auth.Me)
	}

	// Public booking and tracking
	public := r.Group("/api")
	{
		public.POST("/bookings", ctrl.Booking.CreateBooking)
		public.GET("/bookings/options", ctrl.Booking.BookingOptions)
		public.GET("/track/:trackingId", ctrl.Booking.TrackRepair)
	}

	// Staff dashboard
	admin := r.Group("/api/admin")
	admin.Use(utils.AuthMiddleware(cfg.JWT.Secret))
	{
		repairs := admin.Group("/repairs")
		{
			repairs.GET("", ctrl.Repair.ListRepairs)
			repairs.GET("/:id", ctrl.Repair.GetRepair)
			repairs.PUT("/:id", ctrl.Repair.UpdateRepair)
			repairs.POST("/:id/payments", ctrl.Repair.RecordPayment)
		}

		admin.GET("/dashboard", ctrl.Dashboard.GetDashboard)
		admin.GET("/stats", ctrl.Report.GetRecentStats)
		admin.GET("/reports/monthly", ctrl.Report.GetMonthlyReport)
	}

	return r
}
