package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GetOrderStats godoc
// @Summary Get order stats
// @Description Aggregate the logged-in user's order history: counts, revenue and average order value
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := services.GetOrderService().GetOrderStats(ctx, userID)
	if err != nil {
		log.Printf("[order.stats] failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats fetched successfully", stats))
}
