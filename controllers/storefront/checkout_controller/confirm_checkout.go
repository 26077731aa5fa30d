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

// ConfirmCheckout godoc
// @Summary Confirm payment
// @Description Record the payment for the submitted basket, send the confirmation email and empty the cart
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /user/checkout/confirm [post]
func ConfirmCheckout(c *gin.Context) {
	o, userID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	summary, err := o.Confirm(c.Request.Context())
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	// Local history row is best effort, the order is already paid upstream.
	email, _ := middleware.GetUserEmailFromContext(c)
	ctx, cancel := config.WithTimeout()
	defer cancel()
	if _, err := services.GetOrderService().RecordOrder(ctx, models.UserProfile{ID: userID, Email: email}, summary); err != nil {
		log.Printf("[checkout.confirm] ⚠️ failed to record order history for basket %s: %v", summary.BasketID, err)
	}

	services.DropCheckoutSession(userID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order confirmed", summary))
}
