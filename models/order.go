package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // confirmed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the flowers
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is an immutable snapshot of a checkout. Total and item prices are
// frozen at creation time; only Status and PaymentStatus change afterwards.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Reference     string          `gorm:"uniqueIndex" json:"reference"`
	UserID        uint            `gorm:"not null;index" json:"userId"`
	User          User            `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Address       string          `gorm:"not null" json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus PaymentStatus   `gorm:"type:VARCHAR(20);default:'unpaid'" json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"orderId"`
	ProductID uint            `json:"productId"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"` // unit price frozen at order time
}
