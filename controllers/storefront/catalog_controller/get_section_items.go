package catalog_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GetSectionItems godoc
// @Summary Get one page of a category's items
// @Description Paginated item listing for one category, optionally filtered by brand and search term
// @Tags store
// @Produce json
// @Param family path string true "Category id (fa_name)"
// @Param storename query string false "Store name"
// @Param page query int false "Page number, starts at 1"
// @Param limit query int false "Items per page"
// @Param brands query string false "Comma-separated brand ids"
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/sections/:family/items [get]
func GetSectionItems(c *gin.Context) {
	company, err := resolveCompany(c)
	if err != nil {
		log.Printf("[catalog.section-items] failed to resolve store: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Store unavailable"))
		return
	}

	family := c.Param("family")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, totalPages, err := services.GetUpstreamClient().ItemsByFamily(
		ctx, company.ID, family, brandsParam(c), c.Query("q"), page, limit)
	if err != nil {
		log.Printf("[catalog.section-items] page %d of %s failed: %v", page, family, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch items"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Items fetched successfully", gin.H{
		"items":    items,
		"has_more": page < totalPages,
	}, &models.Pagination{
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}))
}
