package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/luandz123/basket-fl-shop/apperrors"
	"github.com/luandz123/basket-fl-shop/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// OrderItemInput is one checkout line. The unit price is supplied by the
// client and frozen as-is; it is NOT re-read from the catalog at order
// time. That trust model comes from the original checkout contract and is
// deliberately preserved — see DESIGN.md before tightening it.
type OrderItemInput struct {
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // accepts both "12.50" and 12.5
}

type CreateOrderInput struct {
	Items         []OrderItemInput `json:"items"`
	Address       string           `json:"address"`
	PaymentMethod string           `json:"paymentMethod"`
}

// Filters for the admin order listing. All fields are optional and
// combined with AND.
type Filters struct {
	Status        string
	PaymentStatus string
	Search        string
	DateFrom      string
	DateTo        string
}

func ParseOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", apperrors.Validation("invalid order status")
	}
}

func ParsePaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusUnpaid):
		return models.PaymentStatusUnpaid, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", apperrors.Validation("invalid payment status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// CreateOrder snapshots the supplied items into an immutable order. The
// order row and its item rows are written in one transaction so a
// concurrent reader can never observe a half-created order.
func CreateOrder(db *gorm.DB, userID uint, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperrors.Validation("order must contain at least one item")
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, apperrors.Validation("address is required")
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return nil, apperrors.Validation("payment method is required")
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.Quantity < 1 {
			return nil, apperrors.Validation("item quantity must be at least 1")
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	order := models.Order{
		Reference:     generateOrderRef(),
		UserID:        userID,
		Items:         items,
		Total:         total,
		Status:        models.OrderStatusPending,
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, apperrors.Internal("failed to create order", err)
	}

	log.Printf("✅ order %d created for user %d (total %s)", order.ID, userID, total.StringFixed(2))
	return FindOne(db, order.ID)
}

// FindOne resolves the order with its user, items and item products.
func FindOne(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("order %d not found", id))
		}
		return nil, apperrors.Internal("failed to fetch order", err)
	}
	return &order, nil
}

// FindUserOrders returns one newest-first page of the user's orders plus
// the total count. Page and limit fall back to 1/10 when out of range.
func FindUserOrders(db *gorm.DB, userID uint, page, limit int) ([]models.Order, int64, error) {
	page, limit = normalizePagination(page, limit)

	var total int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("failed to count orders", err)
	}

	var orders []models.Order
	err := db.
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, apperrors.Internal("failed to fetch orders", err)
	}
	return orders, total, nil
}

// FindAll is the admin view across all orders. A numeric search term is an
// exact order-id match; anything else matches the owner's name or email
// case-insensitively.
func FindAll(db *gorm.DB, page, limit int, filters Filters) ([]models.Order, int64, error) {
	page, limit = normalizePagination(page, limit)

	query := db.Model(&models.Order{})
	if filters.Status != "" {
		query = query.Where("orders.status = ?", filters.Status)
	}
	if filters.PaymentStatus != "" {
		query = query.Where("orders.payment_status = ?", filters.PaymentStatus)
	}
	if filters.DateFrom != "" {
		query = query.Where("orders.created_at >= ?", filters.DateFrom)
	}
	if filters.DateTo != "" {
		query = query.Where("orders.created_at <= ?", filters.DateTo)
	}
	if filters.Search != "" {
		if id, err := strconv.ParseUint(filters.Search, 10, 64); err == nil {
			query = query.Where("orders.id = ?", id)
		} else {
			// LOWER+LIKE instead of ILIKE so the same query runs on
			// postgres and sqlite
			like := "%" + strings.ToLower(filters.Search) + "%"
			query = query.
				Joins("JOIN users ON users.id = orders.user_id").
				Where("LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ?", like, like)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("failed to count orders", err)
	}

	var orders []models.Order
	err := query.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("orders.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, apperrors.Internal("failed to fetch orders", err)
	}
	return orders, total, nil
}

// UpdateStatus writes the fulfillment status unconditionally. Any status
// may move to any other; there is no transition state machine.
func UpdateStatus(db *gorm.DB, id uint, status models.OrderStatus) (*models.Order, error) {
	if _, err := FindOne(db, id); err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, apperrors.Internal("failed to update order status", err)
	}
	log.Printf("✅ order %d status -> %s", id, status)
	return FindOne(db, id)
}

// UpdatePaymentStatus writes the payment status unconditionally,
// independent of the fulfillment status.
func UpdatePaymentStatus(db *gorm.DB, id uint, status models.PaymentStatus) (*models.Order, error) {
	if _, err := FindOne(db, id); err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Where("id = ?", id).
		Update("payment_status", status).Error; err != nil {
		return nil, apperrors.Internal("failed to update payment status", err)
	}
	log.Printf("✅ order %d payment status -> %s", id, status)
	return FindOne(db, id)
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// ParsePageParam turns a query string value into a page/limit number,
// falling back to the default on anything non-numeric.
func ParsePageParam(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
