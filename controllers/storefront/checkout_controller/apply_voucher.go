package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

type voucherRequest struct {
	Code string `json:"code"`
}

// ApplyVoucher godoc
// @Summary Apply a voucher code
// @Description Validate a voucher for this shopper. An accepted voucher credits the wallet, so the balance is refreshed
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body voucherRequest true "Voucher code"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Router /user/checkout/voucher [post]
func ApplyVoucher(c *gin.Context) {
	o, _, ok := sessionFromContext(c)
	if !ok {
		return
	}

	var req voucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request payload"))
		return
	}

	if err := o.ApplyVoucher(c.Request.Context(), req.Code); err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Voucher applied", o.Snapshot()))
}
