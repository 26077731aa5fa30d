package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// UpdateItem godoc
// @Summary Set a cart line's quantity
// @Description Set the absolute quantity of a line. Zero or negative removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Catalog item id"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/cart/items/:itemId [patch]
func UpdateItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request payload"))
		return
	}

	ledger := services.GetCartManager().Ledger(c.Request.Context(), userID)
	if err := ledger.SetQuantity(c.Request.Context(), c.Param("itemId"), req.Quantity); err != nil {
		log.Printf("[cart.update] failed to persist cart for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", ledger.Snapshot()))
}
