package checkout_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// SubmitCheckout godoc
// @Summary Submit the order
// @Description Validate the session and register the basket upstream with status pending. Returns the payment summary
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /user/checkout/submit [post]
func SubmitCheckout(c *gin.Context) {
	o, userID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	summary, err := o.Submit(c.Request.Context())
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	log.Printf("[checkout.submit] basket %s pending for user %s", summary.BasketID, userID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order submitted", summary))
}
