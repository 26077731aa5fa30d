package checkout_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// EnterCheckout godoc
// @Summary Start or re-enter checkout
// @Description Load shipping methods, payment modes and saved addresses, default-selecting the first of each
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param storename query string false "Store name"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /user/checkout [post]
func EnterCheckout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}
	email, _ := middleware.GetUserEmailFromContext(c)

	storeName := c.Query("storename")
	if storeName == "" {
		storeName = config.DefaultStoreName()
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	company, err := services.GetUpstreamClient().CompanyByName(ctx, storeName)
	if err != nil {
		log.Printf("[checkout.enter] failed to resolve store %q: %v", storeName, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Store unavailable"))
		return
	}

	user := models.UserProfile{ID: userID, Email: email}
	o := services.CheckoutSession(userID, user, *company, storeName)
	if err := o.Enter(ctx); err != nil {
		log.Printf("[checkout.enter] failed for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load checkout"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout ready", o.Snapshot()))
}

// GetCheckout godoc
// @Summary Get the checkout session
// @Description Get the current selections, options and cart for the active checkout
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /user/checkout [get]
func GetCheckout(c *gin.Context) {
	o, _, ok := sessionFromContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout fetched successfully", o.Snapshot()))
}
