package catalog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	category_cache "github.com/ShopPulse-Commerce/shoppulse-storefront-backend/cache"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GetBrands godoc
// @Summary Get store brands
// @Description Get the brand list used for storefront filtering
// @Tags store
// @Produce json
// @Param storename query string false "Store name"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/brands [get]
func GetBrands(c *gin.Context) {
	company, err := resolveCompany(c)
	if err != nil {
		log.Printf("[catalog.brands] failed to resolve store: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Store unavailable"))
		return
	}

	if brands, ok := category_cache.GetBrands(company.ID); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched successfully", brands))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	brands, err := services.GetUpstreamClient().Brands(ctx, company.ID)
	if err != nil {
		log.Printf("[catalog.brands] failed to fetch brands for %s: %v", company.ID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch brands"))
		return
	}

	category_cache.SetBrands(company.ID, brands)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched successfully", brands))
}
