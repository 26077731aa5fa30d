package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// RemoveItem godoc
// @Summary Remove a cart line
// @Description Remove the line for an item. Removing an absent line is not an error
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Catalog item id"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/cart/items/:itemId [delete]
func RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ledger := services.GetCartManager().Ledger(c.Request.Context(), userID)
	if err := ledger.Remove(c.Request.Context(), c.Param("itemId")); err != nil {
		log.Printf("[cart.remove] failed to persist cart for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", ledger.Snapshot()))
}
