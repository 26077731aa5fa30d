package address_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// AddAddress godoc
// @Summary Save a delivery address
// @Description Store a new delivery address for the logged-in user
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Address true "Address"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /user/addresses [post]
func AddAddress(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address payload"))
		return
	}
	if address.Address == "" || address.City == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Address and city required"))
		return
	}
	address.UserID = userID

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetUpstreamClient().SaveAddress(ctx, address); err != nil {
		log.Printf("[address.add] failed for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to save address"))
		return
	}

	log.Printf("[address.add] ✅ address saved for user %s", userID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Address saved successfully", address))
}
