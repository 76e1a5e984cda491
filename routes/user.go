package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/luandz123/basket-fl-shop/controllers/cart"
	userControllers "github.com/luandz123/basket-fl-shop/controllers/user"
	"github.com/luandz123/basket-fl-shop/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers profile and cart endpoints. All require a
// valid user credential.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	users.Use(middleware.RequireAuth(db))
	{
		users.GET("/me", userControllers.GetMe(db))
		users.PATCH("/:id", userControllers.UpdateProfile(db))
	}

	cart := r.Group("/cart")
	cart.Use(middleware.RequireAuth(db))
	{
		cart.POST("", cartControllers.AddToCartHandler(db))
		cart.GET("", cartControllers.GetCartHandler(db))
		cart.PUT("/:productId", cartControllers.UpdateCartItemHandler(db))
		cart.DELETE("/:productId", cartControllers.RemoveFromCartHandler(db))
	}
}
