package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/luandz123/basket-fl-shop/controllers/order"
	userControllers "github.com/luandz123/basket-fl-shop/controllers/user"
	"github.com/luandz123/basket-fl-shop/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin
// credential.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(db), middleware.RequireAdmin)
	{
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		admin.PATCH("/orders/:id", orderControllers.UpdateOrderHandler(db))

		admin.GET("/users", userControllers.GetAllUsers(db))
		admin.PATCH("/users/:id", userControllers.AdminUpdateUser(db))
	}
}
