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

// DeleteAddress godoc
// @Summary Delete a delivery address
// @Description Remove one of the logged-in user's saved addresses
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address id"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /user/addresses/:id [delete]
func DeleteAddress(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	addressID := c.Param("id")
	if err := services.GetUpstreamClient().DeleteAddress(ctx, addressID); err != nil {
		log.Printf("[address.delete] failed for user %s, address %s: %v", userID, addressID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to delete address"))
		return
	}

	log.Printf("[address.delete] ✅ address %s deleted for user %s", addressID, userID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address deleted successfully", nil))
}
