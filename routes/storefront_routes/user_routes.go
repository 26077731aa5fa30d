package storefront_routes

import (
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/controllers/storefront/address_controller"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/controllers/storefront/cart_controller"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/controllers/storefront/checkout_controller"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/controllers/storefront/order_controller"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up all account-scoped routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		// Cart
		user.GET("/cart", cart_controller.GetCart)
		user.POST("/cart/items", cart_controller.AddItem)
		user.PATCH("/cart/items/:itemId", cart_controller.UpdateItem)
		user.DELETE("/cart/items/:itemId", cart_controller.RemoveItem)
		user.DELETE("/cart", cart_controller.ClearCart)

		// Checkout
		user.POST("/checkout", checkout_controller.EnterCheckout)
		user.GET("/checkout", checkout_controller.GetCheckout)
		user.PATCH("/checkout/options", checkout_controller.SelectOptions)
		user.POST("/checkout/voucher", checkout_controller.ApplyVoucher)
		user.POST("/checkout/submit", checkout_controller.SubmitCheckout)
		user.POST("/checkout/confirm", checkout_controller.ConfirmCheckout)

		// Delivery addresses
		user.GET("/addresses", address_controller.GetAddresses)
		user.POST("/addresses", address_controller.AddAddress)
		user.DELETE("/addresses/:id", address_controller.DeleteAddress)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.GET("/orders/stats", order_controller.GetOrderStats)
		user.GET("/orders/export", order_controller.ExportOrders)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
		user.GET("/orders/:id/invoice", order_controller.DownloadOrderInvoice)
	}
}
