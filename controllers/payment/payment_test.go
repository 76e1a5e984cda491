package paymentControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/luandz123/basket-fl-shop/controllers/order"
	"github.com/luandz123/basket-fl-shop/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func placeOrder(t *testing.T, db *gorm.DB) *models.Order {
	t.Helper()

	user := models.User{Email: "pay@example.com", Password: "x", Name: "Pay", Role: models.RoleUser, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	product := models.Product{Name: "bouquet", Price: decimal.NewFromInt(30)}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	order, err := orderControllers.CreateOrder(db, user.ID, orderControllers.CreateOrderInput{
		Items:         []orderControllers.OrderItemInput{{ProductID: product.ID, Quantity: 1, Price: product.Price}},
		Address:       "somewhere",
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestProcessPaymentMarksOrderPaid(t *testing.T) {
	db := setupTestDB(t)
	order := placeOrder(t, db)

	result, err := ProcessPayment(db, order, nil)
	if err != nil {
		t.Fatalf("process payment failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}

	reloaded, err := orderControllers.FindOne(db, order.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if reloaded.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("expected paid, got %s", reloaded.PaymentStatus)
	}
}

// Processing the same order twice leaves it paid — the second flip writes
// the same value, never double-charges and never reverts.
func TestProcessPaymentIdempotent(t *testing.T) {
	db := setupTestDB(t)
	order := placeOrder(t, db)

	for i := 0; i < 2; i++ {
		result, err := ProcessPayment(db, order, nil)
		if err != nil {
			t.Fatalf("process payment attempt %d failed: %v", i+1, err)
		}
		if !result.Success {
			t.Fatalf("attempt %d: expected success, got %+v", i+1, result)
		}
	}

	reloaded, err := orderControllers.FindOne(db, order.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if reloaded.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("expected paid after repeat processing, got %s", reloaded.PaymentStatus)
	}
}

// A missing order is a structured failure (HTTP 200, success=false), not
// an error response, so the payment page can render the outcome inline.
func TestProcessPaymentHandlerMissingOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	r := gin.New()
	r.POST("/payment/process", ProcessPaymentHandler(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment/process",
		strings.NewReader(`{"orderId": 999}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Errorf("expected success=false body, got %s", w.Body.String())
	}
}
