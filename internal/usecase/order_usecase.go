package usecase

import (
	"context"
	"time"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// ShippingInput is the loosely structured address sent by the checkout page.
// Street and Address1, and ZipCode and PostalCode, are aliases.
type ShippingInput struct {
	Street     string
	Address1   string
	Address2   string
	City       string
	State      string
	ZipCode    string
	PostalCode string
	Country    string
}

// CustomerInfoInput carries the buyer's contact details.
type CustomerInfoInput struct {
	Name  string
	Email string
	Phone string
}

// CreateOrderInput defines the cart submitted at checkout.
type CreateOrderInput struct {
	Items    []entity.OrderItem
	Shipping ShippingInput
	Customer CustomerInfoInput
}

// RecordPaymentInput stores the identifiers returned by the payment provider.
type RecordPaymentInput struct {
	PaymentMethod   string
	TransactionID   string
	PaymentIntentID string
}

// UpdateOrderStatusInput moves an order along its fulfilment states.
type UpdateOrderStatusInput struct {
	Status            entity.OrderStatus
	Note              string
	TrackingNumber    string
	EstimatedDelivery *time.Time
}

// RefundOrderInput defines a refund. A nil Amount refunds the order total.
type RefundOrderInput struct {
	Reason string
	Amount *float64
}

// OrderUsecase defines order operations. Status updates and refunds are reserved
// for administrators; everything else is available to the owner and administrators.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, actor *entity.User, input *CreateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.Order, error)
	GetOrder(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Order, error)
	CancelOrder(ctx context.Context, actor *entity.User, id uuid.UUID, reason string) (*entity.Order, error)
	AddOrderNote(ctx context.Context, actor *entity.User, id uuid.UUID, message string) (*entity.Order, error)
	RecordPayment(ctx context.Context, actor *entity.User, id uuid.UUID, input *RecordPaymentInput) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	RefundOrder(ctx context.Context, actor *entity.User, id uuid.UUID, input *RefundOrderInput) (*entity.Order, error)
}
