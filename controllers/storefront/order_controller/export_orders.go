package order_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// exportPageLimit caps how many history rows one export covers.
const exportPageLimit = 1000

// ExportOrders godoc
// @Summary Export order history as XLSX
// @Description Download the logged-in user's order history as a spreadsheet
// @Tags orders
// @Produce octet-stream
// @Security BearerAuth
// @Success 200 "XLSX file"
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/orders/export [get]
func ExportOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	rows, _, err := services.GetOrderService().GetOrders(ctx, userID, 1, exportPageLimit)
	if err != nil {
		log.Printf("[order.export] failed to load history for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export orders"))
		return
	}

	buf, err := services.ExportOrdersXLSX(rows)
	if err != nil {
		log.Printf("[order.export] workbook failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export orders"))
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	log.Printf("[order.export] ✅ exported %d orders for user %s", len(rows), userID)
}
