package storefront_routes

import (
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/controllers/storefront/catalog_controller"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/controllers/storefront/feed_controller"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/controllers/storefront/prefs_controller"
	"github.com/gin-gonic/gin"
)

func SetupStoreRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")
	{
		store.GET("", catalog_controller.GetCompany)             // Store profile + banners
		store.GET("/search", catalog_controller.SearchStores)    // Search stores by name
		store.GET("/categories", catalog_controller.GetCategories) // Category tree
		store.GET("/brands", catalog_controller.GetBrands)
		store.GET("/home", catalog_controller.GetHome) // Top sales + sections

		// Section browsing
		sections := store.Group("/sections")
		{
			sections.GET("/:family/items", catalog_controller.GetSectionItems) // Paginated
			sections.GET("/:family/feed", feed_controller.SectionFeed)         // Live search feed
		}

		store.POST("/items/details", catalog_controller.GetItemDetails)
	}

	// Device preferences (keyed by device, no account needed)
	prefs := router.Group("/prefs")
	{
		prefs.GET("/:deviceId", prefs_controller.GetPrefs)
		prefs.PUT("/:deviceId", prefs_controller.SetPrefs)
	}
}
