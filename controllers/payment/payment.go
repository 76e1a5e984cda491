package paymentControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luandz123/basket-fl-shop/apperrors"
	orderControllers "github.com/luandz123/basket-fl-shop/controllers/order"
	"github.com/luandz123/basket-fl-shop/models"
	"gorm.io/gorm"
)

type ProcessPaymentInput struct {
	OrderID     uint                   `json:"orderId" binding:"required"`
	PaymentData map[string]interface{} `json:"paymentData"`
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// simulateGateway stands in for the real payment gateway call. It always
// confirms. A real integration must keep the invariant that the paid flip
// below happens at most once per gateway confirmation; the order id is the
// idempotency key.
func simulateGateway(order *models.Order, paymentData map[string]interface{}) bool {
	return true
}

// ProcessPayment runs the (simulated) gateway call and, on confirmation,
// flips the order's payment status to paid. A declined payment returns a
// structured failure without touching the order.
func ProcessPayment(db *gorm.DB, order *models.Order, paymentData map[string]interface{}) (*Result, error) {
	if !simulateGateway(order, paymentData) {
		return &Result{Success: false, Message: "Payment was declined"}, nil
	}

	if _, err := orderControllers.UpdatePaymentStatus(db, order.ID, models.PaymentStatusPaid); err != nil {
		return nil, apperrors.Internal("payment processing failed", err)
	}
	return &Result{Success: true, Message: "Payment successful"}, nil
}

// POST /payment/process
//
// A missing order is reported as a structured failure, not an error
// response, so the payment page can render the outcome inline.
func ProcessPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProcessPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := orderControllers.FindOne(db, input.OrderID)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				c.JSON(http.StatusOK, Result{Success: false, Message: "Order does not exist"})
				return
			}
			log.Printf("❌ payment lookup failed (order=%d): %v", input.OrderID, err)
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}

		result, err := ProcessPayment(db, order, input.PaymentData)
		if err != nil {
			log.Printf("❌ payment processing failed (order=%d): %v", input.OrderID, err)
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
			return
		}

		log.Printf("✅ payment processed for order %d: success=%v", order.ID, result.Success)
		c.JSON(http.StatusOK, result)
	}
}
