package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/luandz123/basket-fl-shop/controllers/order"
	paymentControllers "github.com/luandz123/basket-fl-shop/controllers/payment"
	"github.com/luandz123/basket-fl-shop/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers checkout, order listing and the payment
// simulation endpoint.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth(db))
	{
		orders.POST("", orderControllers.CreateOrderHandler(db))
		orders.GET("", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderHandler(db))
	}

	payment := r.Group("/payment")
	payment.Use(middleware.RequireAuth(db))
	{
		payment.POST("/process", paymentControllers.ProcessPaymentHandler(db))
	}
}
