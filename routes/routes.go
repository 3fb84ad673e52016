package routes

import (
	"vote-monitor-api/controllers"
	"vote-monitor-api/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the handler sets wired into the router.
type Controllers struct {
	Auth    *controllers.AuthController
	Reports *controllers.ReportController
	Admin   *controllers.AdminController
}

func SetupRoutes(router *gin.Engine, ctl Controllers) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/reports", ctl.Reports.SubmitReport)
			public.GET("/reports", ctl.Reports.GetReports)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Vote Monitor API is running",
				})
			})
		}

		// Moderator routes (require authentication)
		admin := v1.Group("/admin")
		{
			admin.POST("/login", ctl.Auth.Login)

			protected := admin.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.GET("/reports", ctl.Admin.GetReports)
				protected.PATCH("/reports", ctl.Admin.UpdateReport)
				protected.GET("/reports/:id/media-url", ctl.Admin.GetMediaURL)
			}
		}
	}

	// Catch-all for unknown routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})
}
