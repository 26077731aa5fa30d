package auth_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/upstream"
)

// Login godoc
// @Summary Log in with username and password
// @Description Authenticate against the commerce API and mint a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Username and password required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	profile, err := services.GetUpstreamClient().Login(ctx, req.Username, req.Password)
	if err != nil {
		if upErr, ok := err.(*upstream.Error); ok && upErr.Status == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid username or password"))
			return
		}
		log.Printf("[auth.login] upstream failure: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Login service unavailable"))
		return
	}

	token, err := services.GenerateSessionJWT(profile.ID, profile.Email, profile.FirstName+" "+profile.LastName)
	if err != nil {
		log.Printf("[auth.login] failed to mint token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("auth_token", token, 24*60*60, "/", "", isProd, true)

	profile.Password = ""
	log.Printf("[auth.login] ✅ user %s logged in", profile.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.LoginResponse{
		Token:   token,
		Profile: *profile,
	}))
}
