package model

import (
	"time"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	OrderNumber string             `gorm:"type:varchar(50);not null;uniqueIndex:idx_orders_order_number"`
	ProductType string             `gorm:"type:varchar(50);not null"`
	Quantity    int                `gorm:"not null;check:chk_orders_quantity,quantity >= 0"`
	Items       []entity.OrderItem `gorm:"type:jsonb;serializer:json"`
	TotalAmount float64            `gorm:"type:numeric(12,2);not null;check:chk_orders_total_amount,total_amount >= 0"`

	Status          string                 `gorm:"type:varchar(20);not null;default:pending;index"`
	ShippingAddress entity.ShippingAddress `gorm:"type:jsonb;serializer:json"`
	PaymentStatus   string                 `gorm:"type:varchar(20);not null;default:pending"`

	StripePaymentIntentID string `gorm:"type:varchar(255)"`
	TrackingNumber        string `gorm:"type:varchar(100)"`
	EstimatedDelivery     *time.Time
	Notes                 []entity.OrderNote `gorm:"type:jsonb;serializer:json"`

	PaymentMethod        string `gorm:"type:varchar(50)"`
	PaymentTransactionID string `gorm:"type:varchar(255)"`
	PaidAt               *time.Time

	CancelledAt        *time.Time
	CancellationReason string `gorm:"type:text"`

	RefundedAt   *time.Time
	RefundReason string   `gorm:"type:text"`
	RefundAmount *float64 `gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
