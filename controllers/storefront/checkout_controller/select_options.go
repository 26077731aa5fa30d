package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

type selectionsRequest struct {
	ShippingID string `json:"shipping_id"`
	PaymentID  string `json:"payment_id"`
	AddressID  string `json:"address_id"`
}

// SelectOptions godoc
// @Summary Update checkout selections
// @Description Pick a shipping method, payment mode and/or delivery address. Choosing the wallet mode loads its balance
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body selectionsRequest true "Selections, each field optional"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Router /user/checkout/options [patch]
func SelectOptions(c *gin.Context) {
	o, _, ok := sessionFromContext(c)
	if !ok {
		return
	}

	var req selectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request payload"))
		return
	}

	if req.ShippingID != "" {
		if err := o.SelectShipping(req.ShippingID); err != nil {
			respondCheckoutError(c, err)
			return
		}
	}
	if req.PaymentID != "" {
		if err := o.SelectPayment(c.Request.Context(), req.PaymentID); err != nil {
			respondCheckoutError(c, err)
			return
		}
	}
	if req.AddressID != "" {
		if err := o.SelectAddress(req.AddressID); err != nil {
			respondCheckoutError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selections updated", o.Snapshot()))
}
