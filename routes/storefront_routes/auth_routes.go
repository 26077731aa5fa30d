package storefront_routes

import (
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/controllers/storefront/auth_controller"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/register", auth_controller.Register)

		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.POST("/logout", auth_controller.Logout)
	}
}
