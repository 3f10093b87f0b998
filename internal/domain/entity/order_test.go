package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewOrder_DerivesTotals(t *testing.T) {
	items := []OrderItem{
		{ProductType: "premium_card", Quantity: 2, UnitPrice: 24.5},
		{ProductType: "nfc_card", Quantity: 3, UnitPrice: 10},
	}

	order := NewOrder(uuid.New(), items, ShippingAddress{City: "Pune"})

	assert.InDelta(t, 79.0, order.TotalAmount, 1e-9)
	assert.Equal(t, 5, order.Quantity)
	assert.Equal(t, "premium_card", order.ProductType)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
}

func TestNewOrder_EmptyItemsFallsBackToDefaultProduct(t *testing.T) {
	order := NewOrder(uuid.New(), nil, ShippingAddress{})

	assert.Equal(t, DefaultProductType, order.ProductType)
	assert.Zero(t, order.TotalAmount)
	assert.Zero(t, order.Quantity)
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusProcessing))
	assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusShipped))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))
	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusProcessing))
}
