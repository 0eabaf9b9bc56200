package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/controllers"
	"storefront/models"
	"storefront/services"
)

func SetupRoutes(router *gin.Engine, products *services.ProductService, cart *services.CartStore) {
	productCtrl := controllers.NewProductController(products)
	categoryCtrl := controllers.NewCategoryController(products)
	detailCtrl := controllers.NewProductDetailController(products, cart)
	cartCtrl := controllers.NewCartController(cart, products)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:          "ok",
			CatalogSize:     products.Catalog().Len(),
			CartSubscribers: cart.SubscriberCount(),
		})
	})

	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/products/:id/detail", detailCtrl.GetProductDetail)

	cartGroup := router.Group("/cart")
	{
		cartGroup.GET("", cartCtrl.GetCart)
		cartGroup.DELETE("", cartCtrl.ClearCart)
		cartGroup.GET("/summary", cartCtrl.GetCartSummary)
		cartGroup.GET("/stream", cartCtrl.StreamCart)
		cartGroup.POST("/items", cartCtrl.AddItem)
		cartGroup.PATCH("/items/:id", cartCtrl.UpdateItem)
		cartGroup.DELETE("/items/:id", cartCtrl.RemoveItem)
		cartGroup.POST("/checkout", cartCtrl.Checkout)
	}
}
