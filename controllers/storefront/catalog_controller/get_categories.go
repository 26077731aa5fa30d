package catalog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	category_cache "github.com/ShopPulse-Commerce/shoppulse-storefront-backend/cache"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/catalog"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GetCategories godoc
// @Summary Get category tree
// @Description Get the store's categories assembled into a parent/child tree
// @Tags store
// @Produce json
// @Param storename query string false "Store name"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	company, err := resolveCompany(c)
	if err != nil {
		log.Printf("[catalog.categories] failed to resolve store: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Store unavailable"))
		return
	}

	if roots, ok := category_cache.GetTree(company.ID); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", roots))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	families, err := services.GetUpstreamClient().Families(ctx, company.ID)
	if err != nil {
		log.Printf("[catalog.categories] failed to fetch families for %s: %v", company.ID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	roots, dropped := catalog.BuildCategoryTree(families)
	if len(dropped) > 0 {
		log.Printf("[catalog.categories] ⚠️ dropped %d unplaceable families for company %s", len(dropped), company.ID)
	}

	category_cache.SetTree(company.ID, roots)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", roots))
}
