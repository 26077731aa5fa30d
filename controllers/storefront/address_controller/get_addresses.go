package address_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GetAddresses godoc
// @Summary List delivery addresses
// @Description Get the logged-in user's saved delivery addresses
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /user/addresses [get]
func GetAddresses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	addresses, err := services.GetUpstreamClient().DeliveryAddresses(ctx, userID)
	if err != nil {
		log.Printf("[address.list] failed for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch addresses"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Addresses fetched successfully", addresses))
}
