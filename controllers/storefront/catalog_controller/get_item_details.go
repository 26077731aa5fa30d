package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/catalog"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// GetItemDetails godoc
// @Summary Build an item detail view
// @Description Map a raw catalog item to its detail view: image list, discounted price and joined description
// @Tags store
// @Accept json
// @Produce json
// @Param item body models.Item true "Raw catalog item"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/items/details [post]
func GetItemDetails(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item payload"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item details built successfully", catalog.Details(&item)))
}
