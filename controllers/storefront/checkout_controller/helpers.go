package checkout_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/checkout"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// sessionFromContext returns the caller's active checkout session, replying
// with the right status when there is none.
func sessionFromContext(c *gin.Context) (*checkout.Orchestrator, string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return nil, "", false
	}
	o, ok := services.ActiveCheckoutSession(userID)
	if !ok {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "No active checkout session"))
		return nil, "", false
	}
	return o, userID, true
}

// respondCheckoutError maps orchestrator failures to HTTP statuses:
// validation messages go back verbatim, busy means try again, anything else
// is an upstream fault.
func respondCheckoutError(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	switch {
	case errors.Is(err, checkout.ErrBusy):
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Another request is in progress"))
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, vErr.Message))
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Checkout service unavailable"))
	}
}
