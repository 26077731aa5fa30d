package catalog_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/catalog"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GetHome godoc
// @Summary Get home feed
// @Description Get banners, best sellers and per-category item sections for the store home screen
// @Tags store
// @Produce json
// @Param storename query string false "Store name"
// @Param brands query string false "Comma-separated brand ids"
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/home [get]
func GetHome(c *gin.Context) {
	company, err := resolveCompany(c)
	if err != nil {
		log.Printf("[catalog.home] failed to resolve store: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Store unavailable"))
		return
	}

	brands := brandsParam(c)
	search := c.Query("q")
	client := services.GetUpstreamClient()

	ctx, cancel := config.WithCustomTimeout(20 * time.Second)
	defer cancel()

	topSales, err := client.TopSales(ctx, company.ID, brands, search)
	if err != nil {
		log.Printf("[catalog.home] top sales failed for %s: %v", company.ID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch home feed"))
		return
	}

	sectionItems, err := client.Top10ByFamily(ctx, company.ID, brands, search)
	if err != nil {
		log.Printf("[catalog.home] section items failed for %s: %v", company.ID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch home feed"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home feed fetched successfully", gin.H{
		"banners":   company.Banners(),
		"top_sales": topSales,
		"sections":  catalog.GroupItemsByFamily(sectionItems),
	}))
}
