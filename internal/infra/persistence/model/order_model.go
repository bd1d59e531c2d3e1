package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. The (user_id, checkout_attempt_id)
// unique index is what makes checkout submission idempotent.
type OrderModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_orders_checkout_attempt"`
	UserEmail         string         `gorm:"type:varchar(255);not null"`
	CheckoutAttemptID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_orders_checkout_attempt"`
	Items             datatypes.JSON `gorm:"not null"`
	ShippingAddress   datatypes.JSON `gorm:"not null"`
	Promo             datatypes.JSON // Applied promo snapshot, nullable.
	Subtotal          float64        `gorm:"not null"`
	Discount          float64        `gorm:"not null"`
	Shipping          float64        `gorm:"not null"`
	Tax               float64        `gorm:"not null"`
	Total             float64        `gorm:"not null"`
	Status            string         `gorm:"type:varchar(20);not null;index"`
	PaymentStatus     string         `gorm:"type:varchar(20);not null;index"`
	PaymentMethod     string         `gorm:"type:varchar(50)"`
	PaymentRef        string         `gorm:"type:varchar(100)"`
	PaymentDate       *time.Time
	EstimatedDelivery time.Time
	OrderDate         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
