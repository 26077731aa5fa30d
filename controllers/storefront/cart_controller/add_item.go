package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// AddItem godoc
// @Summary Add an item to the cart
// @Description Add quantity units of an item, merging with an existing line for the same item
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddCartItemRequest true "Item and quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/cart/items [post]
func AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request payload"))
		return
	}
	if req.Item.ID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Item id required"))
		return
	}

	ledger := services.GetCartManager().Ledger(c.Request.Context(), userID)
	if err := ledger.Add(c.Request.Context(), req.Item, req.Quantity); err != nil {
		log.Printf("[cart.add] failed to persist cart for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", ledger.Snapshot()))
}
