package prefs_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// SetPrefs godoc
// @Summary Store device preferences
// @Description Persist the theme and store settings for a device
// @Tags prefs
// @Accept json
// @Produce json
// @Param deviceId path string true "Device id"
// @Param request body models.DevicePrefs true "Preferences"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /prefs/:deviceId [put]
func SetPrefs(c *gin.Context) {
	deviceID := c.Param("deviceId")

	var prefs models.DevicePrefs
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid preferences payload"))
		return
	}
	if prefs.Theme != "light" && prefs.Theme != "dark" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Theme must be light or dark"))
		return
	}

	if err := services.GetPrefsService().Set(c.Request.Context(), deviceID, prefs); err != nil {
		log.Printf("[prefs.set] failed for device %s: %v", deviceID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save preferences"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preferences saved successfully", prefs))
}
