package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	mockUsecase "taponn/internal/mocks/usecase"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderTestEcho(t *testing.T, actor *entity.User) (*echo.Echo, *mockUsecase.MockOrderUsecase) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/orders", withActor(actor))
	g.POST("", h.CreateOrder)
	g.GET("", h.ListOrders)
	g.GET("/:id", h.GetOrder)
	g.PATCH("/:id/cancel", h.CancelOrder)
	g.POST("/:id/notes", h.AddOrderNote)
	g.POST("/:id/payment", h.RecordPayment)
	g.PATCH("/:id/status", h.UpdateOrderStatus)
	g.POST("/:id/refund", h.RefundOrder)

	return e, uc
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	actor := newUser(entity.RoleUser)

	t.Run("maps checkout payload", func(t *testing.T) {
		e, uc := newOrderTestEcho(t, actor)

		var got *usecase.CreateOrderInput
		uc.EXPECT().CreateOrder(mock.Anything, actor, mock.Anything).
			Run(func(_ context.Context, _ *entity.User, input *usecase.CreateOrderInput) { got = input }).
			Return(&entity.Order{ID: uuid.New(), OrderNumber: "TAP-1-1000", TotalAmount: 59.98, Status: entity.OrderStatusPending}, nil)

		rec := doJSON(e, http.MethodPost, "/api/orders", `{
			"items": [{"productType": "nfc_card", "quantity": 2, "unitPrice": 29.99}],
			"shipping": {"address": {"street": "1 Main St", "city": "Austin", "zipCode": "73301", "country": "US"}},
			"customerInfo": {"name": "Ada Lovelace", "email": "ada@example.com", "phone": "+15550100"}
		}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NotNil(t, got)
		require.Len(t, got.Items, 1)
		assert.Equal(t, entity.OrderItem{ProductType: "nfc_card", Quantity: 2, UnitPrice: 29.99}, got.Items[0])
		assert.Equal(t, "1 Main St", got.Shipping.Street)
		assert.Equal(t, "73301", got.Shipping.ZipCode)
		assert.Equal(t, "Ada Lovelace", got.Customer.Name)
		assert.Equal(t, "+15550100", got.Customer.Phone)

		out := decodeData[OrderResponse](t, rec)
		assert.Equal(t, "TAP-1-1000", out.OrderNumber)
		assert.NotNil(t, out.Notes)
	})

	t.Run("empty cart", func(t *testing.T) {
		e, uc := newOrderTestEcho(t, actor)

		var got *usecase.CreateOrderInput
		uc.EXPECT().CreateOrder(mock.Anything, actor, mock.Anything).
			Run(func(_ context.Context, _ *entity.User, input *usecase.CreateOrderInput) { got = input }).
			Return(&entity.Order{ID: uuid.New(), OrderNumber: "TAP-1-1001", ProductType: entity.DefaultProductType, Status: entity.OrderStatusPending}, nil)

		rec := doJSON(e, http.MethodPost, "/api/orders", `{"items": []}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NotNil(t, got)
		assert.Empty(t, got.Items)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		e, _ := newOrderTestEcho(t, actor)

		rec := doJSON(e, http.MethodPost, "/api/orders", `{"items": [{"productType": "nfc_card", "quantity": 0, "unitPrice": 10}]}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestOrderHandler_GetOrder_NotOwner(t *testing.T) {
	actor := newUser(entity.RoleUser)
	e, uc := newOrderTestEcho(t, actor)
	id := uuid.New()
	uc.EXPECT().GetOrder(mock.Anything, actor, id).Return(nil, domainerrors.ErrForbidden)

	rec := doJSON(e, http.MethodGet, "/api/orders/"+id.String(), "")

	requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	actor := newUser(entity.RoleUser)
	id := uuid.New()

	t.Run("with reason", func(t *testing.T) {
		e, uc := newOrderTestEcho(t, actor)
		uc.EXPECT().CancelOrder(mock.Anything, actor, id, "changed my mind").
			Return(&entity.Order{ID: id, Status: entity.OrderStatusCancelled}, nil)

		rec := doJSON(e, http.MethodPatch, "/api/orders/"+id.String()+"/cancel", `{"reason":"changed my mind"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, entity.OrderStatusCancelled, decodeData[OrderResponse](t, rec).Status)
	})

	t.Run("without body", func(t *testing.T) {
		e, uc := newOrderTestEcho(t, actor)
		uc.EXPECT().CancelOrder(mock.Anything, actor, id, "").
			Return(&entity.Order{ID: id, Status: entity.OrderStatusCancelled}, nil)

		rec := doJSON(e, http.MethodPatch, "/api/orders/"+id.String()+"/cancel", "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("already shipped", func(t *testing.T) {
		e, uc := newOrderTestEcho(t, actor)
		uc.EXPECT().CancelOrder(mock.Anything, actor, id, "").Return(nil, domainerrors.ErrOrderNotCancellable)

		rec := doJSON(e, http.MethodPatch, "/api/orders/"+id.String()+"/cancel", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "ORDER_NOT_CANCELLABLE")
	})

	t.Run("invalid id", func(t *testing.T) {
		e, _ := newOrderTestEcho(t, actor)

		rec := doJSON(e, http.MethodPatch, "/api/orders/123/cancel", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
	})
}

func TestOrderHandler_AddOrderNote_RequiresMessage(t *testing.T) {
	e, _ := newOrderTestEcho(t, newUser(entity.RoleUser))

	rec := doJSON(e, http.MethodPost, "/api/orders/"+uuid.NewString()+"/notes", `{"message":""}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestOrderHandler_RecordPayment(t *testing.T) {
	actor := newUser(entity.RoleUser)
	e, uc := newOrderTestEcho(t, actor)
	id := uuid.New()
	uc.EXPECT().RecordPayment(mock.Anything, actor, id, &usecase.RecordPaymentInput{
		PaymentMethod:   "card",
		TransactionID:   "txn_1",
		PaymentIntentID: "pi_1",
	}).Return(&entity.Order{ID: id, PaymentStatus: entity.PaymentStatusPaid}, nil)

	rec := doJSON(e, http.MethodPost, "/api/orders/"+id.String()+"/payment",
		`{"paymentMethod":"card","transactionId":"txn_1","paymentIntentId":"pi_1"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, entity.PaymentStatusPaid, decodeData[OrderResponse](t, rec).PaymentStatus)
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	admin := newUser(entity.RoleAdmin)
	id := uuid.New()

	t.Run("parses tracking and eta", func(t *testing.T) {
		e, uc := newOrderTestEcho(t, admin)
		eta := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().UpdateOrderStatus(mock.Anything, admin, id, &usecase.UpdateOrderStatusInput{
			Status:            entity.OrderStatusShipped,
			TrackingNumber:    "1Z999",
			EstimatedDelivery: &eta,
		}).Return(&entity.Order{ID: id, Status: entity.OrderStatusShipped, TrackingNumber: "1Z999"}, nil)

		rec := doJSON(e, http.MethodPatch, "/api/orders/"+id.String()+"/status",
			`{"status":"shipped","trackingNumber":"1Z999","estimatedDelivery":"2026-04-01T00:00:00Z"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "1Z999", decodeData[OrderResponse](t, rec).TrackingNumber)
	})

	t.Run("unknown status", func(t *testing.T) {
		e, _ := newOrderTestEcho(t, admin)

		rec := doJSON(e, http.MethodPatch, "/api/orders/"+id.String()+"/status", `{"status":"lost"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestOrderHandler_RefundOrder(t *testing.T) {
	admin := newUser(entity.RoleAdmin)
	id := uuid.New()

	t.Run("partial", func(t *testing.T) {
		e, uc := newOrderTestEcho(t, admin)
		amount := 10.0
		uc.EXPECT().RefundOrder(mock.Anything, admin, id, &usecase.RefundOrderInput{Reason: "damaged", Amount: &amount}).
			Return(&entity.Order{ID: id, PaymentStatus: entity.PaymentStatusRefunded, RefundAmount: &amount}, nil)

		rec := doJSON(e, http.MethodPost, "/api/orders/"+id.String()+"/refund", `{"reason":"damaged","amount":10}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		out := decodeData[OrderResponse](t, rec)
		require.NotNil(t, out.RefundAmount)
		assert.InDelta(t, 10.0, *out.RefundAmount, 0.001)
	})

	t.Run("negative amount", func(t *testing.T) {
		e, _ := newOrderTestEcho(t, admin)

		rec := doJSON(e, http.MethodPost, "/api/orders/"+id.String()+"/refund", `{"amount":-5}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestOrderHandler_ListOrders_DefaultPaging(t *testing.T) {
	actor := newUser(entity.RoleUser)
	e, uc := newOrderTestEcho(t, actor)
	uc.EXPECT().ListOrders(mock.Anything, actor, 0, 0).Return(nil, nil)

	rec := doJSON(e, http.MethodGet, "/api/orders?limit=abc", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}
