package routes

import (
	"github.com/gin-gonic/gin"
	categoryControllers "github.com/luandz123/basket-fl-shop/controllers/category"
	productControllers "github.com/luandz123/basket-fl-shop/controllers/product"
	"github.com/luandz123/basket-fl-shop/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the product and category endpoints. Reads
// are public; mutations require an admin credential.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))

		products.POST("", middleware.RequireAuth(db), middleware.RequireAdmin, productControllers.CreateProduct(db))
		products.PUT("/:id", middleware.RequireAuth(db), middleware.RequireAdmin, productControllers.UpdateProduct(db))
		products.DELETE("/:id", middleware.RequireAuth(db), middleware.RequireAdmin, productControllers.DeleteProduct(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryControllers.GetCategories(db))
		categories.GET("/:id", categoryControllers.GetCategoryByID(db))

		categories.POST("", middleware.RequireAuth(db), middleware.RequireAdmin, categoryControllers.CreateCategory(db))
		categories.PUT("/:id", middleware.RequireAuth(db), middleware.RequireAdmin, categoryControllers.UpdateCategory(db))
		categories.DELETE("/:id", middleware.RequireAuth(db), middleware.RequireAdmin, categoryControllers.DeleteCategory(db))
	}
}
