package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/upstream"
)

// Register godoc
// @Summary Register a shopper account
// @Description Create the account upstream and return the stored profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.UserProfile true "Profile"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid registration payload"))
		return
	}
	if profile.Email == "" || profile.Username == "" || profile.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email, username and password required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	created, err := services.GetUpstreamClient().Register(ctx, profile)
	if err != nil {
		if upErr, ok := err.(*upstream.Error); ok && upErr.Status == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, upErr.Message))
			return
		}
		log.Printf("[auth.register] upstream failure: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Registration service unavailable"))
		return
	}

	created.Password = ""
	log.Printf("[auth.register] ✅ user %s registered", created.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", created))
}
