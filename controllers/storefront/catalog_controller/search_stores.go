package catalog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// SearchStores godoc
// @Summary Search stores
// @Description Find stores whose name matches the search term
// @Tags store
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/search [get]
func SearchStores(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search term required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	companies, err := services.GetUpstreamClient().SearchCompanies(ctx, term)
	if err != nil {
		log.Printf("[store.search] search %q failed: %v", term, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Store search unavailable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stores fetched successfully", companies))
}
