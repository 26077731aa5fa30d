// @title ShopPulse Storefront API
// @version 1.0
// @description ShopPulse Storefront Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	_ "github.com/ShopPulse-Commerce/shoppulse-storefront-backend/docs"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/routes/storefront_routes"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// ✅ Initialize JWT Service for session tokens
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	// ✅ Upstream commerce client + Redis-backed carts
	services.InitStorefront()
	log.Printf("✅ Storefront services initialized (upstream: %s)", config.UpstreamBaseURL())

	// ✅ Configure CORS properly for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Auth endpoints get a tighter limit than the rest of the API
	authGroup := api.Group("")
	authGroup.Use(middleware.RateLimiter(30, time.Minute))
	storefront_routes.SetupAuthRoutes(authGroup)

	// Public storefront (no rate limiter)
	storefront_routes.SetupStoreRoutes(api)
	storefront_routes.SetupUserRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	defer config.CloseDB()

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
