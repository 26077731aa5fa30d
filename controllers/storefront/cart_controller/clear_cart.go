package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// ClearCart godoc
// @Summary Empty the cart
// @Description Remove every line and erase the persisted copy
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/cart [delete]
func ClearCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ledger := services.GetCartManager().Ledger(c.Request.Context(), userID)
	if err := ledger.Clear(c.Request.Context()); err != nil {
		log.Printf("[cart.clear] failed to erase cart for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", ledger.Snapshot()))
}
