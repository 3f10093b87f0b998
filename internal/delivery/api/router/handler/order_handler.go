package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taponn/internal/delivery/api/response"
	"taponn/internal/domain/entity"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type OrderItemRequest struct {
	ProductType string  `json:"productType" validate:"required,max=50"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

// ShippingAddressRequest accepts both the checkout page's field names and the stored ones.
type ShippingAddressRequest struct {
	Street     string `json:"street"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type ShippingRequest struct {
	Address ShippingAddressRequest `json:"address"`
}

type CustomerInfoRequest struct {
	Name  string `json:"name" validate:"max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"max=50"`
}

// CreateOrderRequest represents the checkout payload
type CreateOrderRequest struct {
	Items        []OrderItemRequest  `json:"items" validate:"dive"`
	Shipping     ShippingRequest     `json:"shipping"`
	CustomerInfo CustomerInfoRequest `json:"customerInfo"`
}

func (r *CreateOrderRequest) input() *usecase.CreateOrderInput {
	items := make([]entity.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entity.OrderItem{
			ProductType: item.ProductType,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	addr := r.Shipping.Address

	return &usecase.CreateOrderInput{
		Items: items,
		Shipping: usecase.ShippingInput{
			Street:     addr.Street,
			Address1:   addr.Address1,
			Address2:   addr.Address2,
			City:       addr.City,
			State:      addr.State,
			ZipCode:    addr.ZipCode,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		},
		Customer: usecase.CustomerInfoInput{
			Name:  r.CustomerInfo.Name,
			Email: r.CustomerInfo.Email,
			Phone: r.CustomerInfo.Phone,
		},
	}
}

type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type OrderNoteRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type RecordPaymentRequest struct {
	PaymentMethod   string `json:"paymentMethod" validate:"max=50"`
	TransactionID   string `json:"transactionId" validate:"max=255"`
	PaymentIntentID string `json:"paymentIntentId" validate:"max=255"`
}

type UpdateOrderStatusRequest struct {
	Status            string     `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	Note              string     `json:"note" validate:"max=500"`
	TrackingNumber    string     `json:"trackingNumber" validate:"max=100"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

type RefundOrderRequest struct {
	Reason string   `json:"reason" validate:"max=500"`
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
}

// CreateOrder handles checkout.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actorOf(c), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}

// ListOrders returns the caller's orders, or every order for administrators.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	limit, offset := page(c)

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actorOf(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponses(orders))
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actorOf(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// CancelOrder cancels a pending or processing order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	return mutateOrder(c, "Invalid cancellation input", &CancelOrderRequest{},
		func(c echo.Context, id uuid.UUID, req *CancelOrderRequest) (*entity.Order, error) {
			return h.orderUC.CancelOrder(c.Request().Context(), actorOf(c), id, req.Reason)
		})
}

// AddOrderNote appends a note.
func (h *OrderHandler) AddOrderNote(c echo.Context) error {
	return mutateOrder(c, "Invalid note input", &OrderNoteRequest{},
		func(c echo.Context, id uuid.UUID, req *OrderNoteRequest) (*entity.Order, error) {
			return h.orderUC.AddOrderNote(c.Request().Context(), actorOf(c), id, req.Message)
		})
}

// RecordPayment stores the payment provider identifiers and marks the order paid.
func (h *OrderHandler) RecordPayment(c echo.Context) error {
	return mutateOrder(c, "Invalid payment input", &RecordPaymentRequest{},
		func(c echo.Context, id uuid.UUID, req *RecordPaymentRequest) (*entity.Order, error) {
			return h.orderUC.RecordPayment(c.Request().Context(), actorOf(c), id, &usecase.RecordPaymentInput{
				PaymentMethod:   req.PaymentMethod,
				TransactionID:   req.TransactionID,
				PaymentIntentID: req.PaymentIntentID,
			})
		})
}

// UpdateOrderStatus moves the order to a new fulfilment status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	return mutateOrder(c, "Invalid status input", &UpdateOrderStatusRequest{},
		func(c echo.Context, id uuid.UUID, req *UpdateOrderStatusRequest) (*entity.Order, error) {
			return h.orderUC.UpdateOrderStatus(c.Request().Context(), actorOf(c), id, &usecase.UpdateOrderStatusInput{
				Status:            entity.OrderStatus(req.Status),
				Note:              req.Note,
				TrackingNumber:    req.TrackingNumber,
				EstimatedDelivery: req.EstimatedDelivery,
			})
		})
}

// RefundOrder refunds a paid order in full or in part.
func (h *OrderHandler) RefundOrder(c echo.Context) error {
	return mutateOrder(c, "Invalid refund input", &RefundOrderRequest{},
		func(c echo.Context, id uuid.UUID, req *RefundOrderRequest) (*entity.Order, error) {
			return h.orderUC.RefundOrder(c.Request().Context(), actorOf(c), id, &usecase.RefundOrderInput{
				Reason: req.Reason,
				Amount: req.Amount,
			})
		})
}

// mutateOrder parses the order ID and the request body, then runs the action.
func mutateOrder[T any](c echo.Context, bindMessage string, req *T, action func(echo.Context, uuid.UUID, *T) (*entity.Order, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", bindMessage)
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	order, err := action(c, id, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}
