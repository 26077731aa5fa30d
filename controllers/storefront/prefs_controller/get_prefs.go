package prefs_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GetPrefs godoc
// @Summary Get device preferences
// @Description Get the stored theme and store settings for a device
// @Tags prefs
// @Produce json
// @Param deviceId path string true "Device id"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /prefs/:deviceId [get]
func GetPrefs(c *gin.Context) {
	deviceID := c.Param("deviceId")

	prefs, err := services.GetPrefsService().Get(c.Request.Context(), deviceID)
	if err != nil {
		log.Printf("[prefs.get] failed for device %s: %v", deviceID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch preferences"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preferences fetched successfully", prefs))
}
