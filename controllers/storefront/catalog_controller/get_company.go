package catalog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// GetCompany godoc
// @Summary Get store profile
// @Description Resolve a store by name and return its profile plus home banners
// @Tags store
// @Produce json
// @Param storename query string false "Store name"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store [get]
func GetCompany(c *gin.Context) {
	company, err := resolveCompany(c)
	if err != nil {
		log.Printf("[store.get] failed to resolve store: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Store unavailable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store fetched successfully", gin.H{
		"company": company,
		"banners": company.Banners(),
	}))
}
