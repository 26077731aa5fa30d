package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GetCart godoc
// @Summary Get the cart
// @Description Get the logged-in user's cart lines and running total
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /user/cart [get]
func GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ledger := services.GetCartManager().Ledger(c.Request.Context(), userID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", ledger.Snapshot()))
}
