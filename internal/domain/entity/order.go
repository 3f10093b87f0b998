package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

const DefaultProductType = "nfc_card"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions lists the statuses reachable from each status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next may follow s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is a purchase of physical cards.
type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OrderNumber string
	ProductType string
	Quantity    int
	Items       []OrderItem
	TotalAmount float64

	Status          OrderStatus
	ShippingAddress ShippingAddress
	PaymentStatus   PaymentStatus

	StripePaymentIntentID string
	TrackingNumber        string
	EstimatedDelivery     *time.Time
	Notes                 []OrderNote

	PaymentMethod        string
	PaymentTransactionID string
	PaidAt               *time.Time

	CancelledAt        *time.Time
	CancellationReason string

	RefundedAt   *time.Time
	RefundReason string
	RefundAmount *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ProductType string  `json:"productType"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type ShippingAddress struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Address1   string `json:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type OrderNote struct {
	Message string    `json:"message"`
	AddedBy uuid.UUID `json:"addedBy"`
	AddedAt time.Time `json:"addedAt"`
}

// NewOrder builds a pending order from line items. Totals are derived from the items
// and the primary product type is taken from the first item.
func NewOrder(userID uuid.UUID, items []OrderItem, address ShippingAddress) *Order {
	total := 0.0
	quantity := 0
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
		quantity += item.Quantity
	}

	productType := DefaultProductType
	if len(items) > 0 && items[0].ProductType != "" {
		productType = items[0].ProductType
	}

	return &Order{
		UserID:          userID,
		ProductType:     productType,
		Quantity:        quantity,
		Items:           items,
		TotalAmount:     total,
		Status:          OrderStatusPending,
		PaymentStatus:   PaymentStatusPending,
		ShippingAddress: address,
	}
}

// IsCancellable reports whether the order may still be cancelled.
func (o *Order) IsCancellable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// AddNote appends a staff or customer note.
func (o *Order) AddNote(message string, author uuid.UUID, at time.Time) {
	o.Notes = append(o.Notes, OrderNote{Message: message, AddedBy: author, AddedAt: at})
}
