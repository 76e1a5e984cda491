package orderControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luandz123/basket-fl-shop/apperrors"
	cartControllers "github.com/luandz123/basket-fl-shop/controllers/cart"
	"github.com/luandz123/basket-fl-shop/middleware"
	"github.com/luandz123/basket-fl-shop/models"
	"gorm.io/gorm"
)

type UpdateOrderInput struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := CreateOrder(db, userID, input)
		if err != nil {
			log.Printf("❌ create order failed (user=%d): %v", userID, err)
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}

		// the order snapshot is durable at this point; a failed cart
		// cleanup is not worth failing the checkout over
		if err := cartControllers.ClearCart(db, userID); err != nil {
			log.Printf("⚠️ failed to clear cart after checkout (user=%d): %v", userID, err)
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		page := ParsePageParam(c.Query("page"), defaultPage)
		limit := ParsePageParam(c.Query("limit"), defaultLimit)

		orders, total, err := FindUserOrders(db, userID, page, limit)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
	}
}

// GET /orders/:id — owner or admin only.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, findErr := FindOne(db, uint(id))
		if findErr != nil {
			c.JSON(apperrors.HTTPStatus(findErr), gin.H{"error": apperrors.Message(findErr)})
			return
		}

		role, _ := c.Get("user_role")
		if order.UserID != userID && role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to view this order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := ParsePageParam(c.Query("page"), defaultPage)
		limit := ParsePageParam(c.Query("limit"), defaultLimit)
		filters := Filters{
			Status:        c.Query("status"),
			PaymentStatus: c.Query("paymentStatus"),
			Search:        c.Query("search"),
			DateFrom:      c.Query("dateFrom"),
			DateTo:        c.Query("dateTo"),
		}

		orders, total, err := FindAll(db, page, limit, filters)
		if err != nil {
			log.Printf("❌ admin order listing failed: %v", err)
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
	}
}

// PATCH /admin/orders/:id — sets status and/or paymentStatus.
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var input UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Status == "" && input.PaymentStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		var order *models.Order
		if input.Status != "" {
			status, err := ParseOrderStatus(input.Status)
			if err != nil {
				c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
				return
			}
			order, err = UpdateStatus(db, uint(id), status)
			if err != nil {
				c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
				return
			}
		}
		if input.PaymentStatus != "" {
			status, err := ParsePaymentStatus(input.PaymentStatus)
			if err != nil {
				c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
				return
			}
			order, err = UpdatePaymentStatus(db, uint(id), status)
			if err != nil {
				c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
				return
			}
		}
		c.JSON(http.StatusOK, order)
	}
}
