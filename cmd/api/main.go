package main

import (
	"context"
	"log"
	"os"

	"vote-monitor-api/config"
	"vote-monitor-api/controllers"
	"vote-monitor-api/middleware"
	"vote-monitor-api/monitor"
	"vote-monitor-api/routes"
	"vote-monitor-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize database
	config.InitDB()

	settings := config.LoadSettings()

	// Object storage
	store, err := services.NewS3Store(context.Background(), settings.S3)
	if err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	// Pipeline services
	media := services.NewMediaService(store, settings.WatermarkText)
	limiter := services.NewRateLimiterService(config.DB, settings.RateLimit)
	captcha := services.NewRecaptchaVerifier(settings.RecaptchaSecret)
	audit := services.NewAuditService(config.DB)
	reports := services.NewReportService(config.DB, media)

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add logging middleware
	router.Use(gin.Logger())

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware(settings.AllowedOrigins))

	// Prometheus metrics
	monitor.RegisterMetricsRoute(router)

	// Setup routes
	routes.SetupRoutes(router, routes.Controllers{
		Auth:    controllers.NewAuthController(audit, settings.IPHashSalt),
		Reports: controllers.NewReportController(settings, limiter, captcha, reports),
		Admin:   controllers.NewAdminController(reports, media, audit, settings.IPHashSalt),
	})

	// Start server
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
