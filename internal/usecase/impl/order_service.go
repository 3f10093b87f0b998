package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/domain/service"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxOrderNumberAttempts = 10
	orderEventCategory     = "commerce"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	events    eventRecorder
	logger    *slog.Logger

	now    func() time.Time
	suffix func() int
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		events:    newEventRecorder(params.Publisher, params.Logger),
		logger:    params.Logger,
		now:       time.Now,
		suffix:    randomSuffix,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// orderNumber formats TAP-<unix seconds>-<suffix>.
func orderNumber(now time.Time, suffix int) string {
	return fmt.Sprintf("TAP-%d-%d", now.Unix(), suffix)
}

// shippingAddress maps the checkout form onto the stored address. The customer
// name is split on its first space.
func shippingAddress(shipping usecase.ShippingInput, customer usecase.CustomerInfoInput) entity.ShippingAddress {
	firstName, lastName, _ := strings.Cut(strings.TrimSpace(customer.Name), " ")

	return entity.ShippingAddress{
		FirstName:  firstName,
		LastName:   strings.TrimSpace(lastName),
		Address1:   firstNonEmpty(shipping.Street, shipping.Address1),
		Address2:   shipping.Address2,
		City:       shipping.City,
		State:      shipping.State,
		PostalCode: firstNonEmpty(shipping.ZipCode, shipping.PostalCode),
		Country:    shipping.Country,
		Phone:      customer.Phone,
	}
}

func validateItems(items []entity.OrderItem) error {
	for i, item := range items {
		if item.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("item %d: quantity must be positive", i))
		}
		if item.UnitPrice < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("item %d: unit price must not be negative", i))
		}
	}

	return nil
}

func (srv *orderService) orderEvent(order *entity.Order, actor *entity.User, eventType, action string, extra map[string]any) *entity.AnalyticsEvent {
	if extra == nil {
		extra = map[string]any{}
	}
	extra["orderId"] = order.ID.String()
	extra["orderNumber"] = order.OrderNumber

	userID := actor.ID

	return &entity.AnalyticsEvent{
		UserID:        &userID,
		EventType:     eventType,
		EventCategory: orderEventCategory,
		EventAction:   action,
		Metadata: entity.EventMetadata{
			Timestamp: srv.now(),
			Source:    "server",
			Extra:     extra,
		},
	}
}

// CreateOrder stores a pending order under a fresh order number, retrying on collision.
func (srv *orderService) CreateOrder(ctx context.Context, actor *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := validateItems(input.Items); err != nil {
		return nil, err
	}

	order := entity.NewOrder(actor.ID, input.Items, shippingAddress(input.Shipping, input.Customer))

	var event *entity.AnalyticsEvent
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		created := false
		for range maxOrderNumberAttempts {
			order.OrderNumber = orderNumber(srv.now(), srv.suffix())

			err := orderRepo.Create(ctx, order)
			if errors.Is(err, repository.ErrDuplicateOrderNumber) {
				continue
			}
			if err != nil {
				return errors.Wrap(err, "failed to create order")
			}
			created = true

			break
		}
		if !created {
			return domainerrors.ErrOrderNumberGenerationFailed.WrapMessage(fmt.Sprintf("%d attempts", maxOrderNumberAttempts))
		}

		event = srv.orderEvent(order, actor, entity.EventTypeOrderCreated, "create", map[string]any{
			"totalAmount": order.TotalAmount,
			"quantity":    order.Quantity,
		})

		return srv.events.record(ctx, repoFactory.AnalyticsRepo(), event)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.events.publish(ctx, event)
	srv.log(ctx).Info("Order created", slog.String("orderNumber", order.OrderNumber), slog.Any("userID", actor.ID))

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.Order, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	limit, offset = normalizePage(limit, offset)

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.OrderRepo().ListByUser(ctx, actor.ID, limit, offset)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func findOrder(ctx context.Context, repo repository.OrderRepository, id uuid.UUID) (*entity.Order, error) {
	order, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Order, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findOrder(ctx, repoFactory.OrderRepo(), id)
		if err != nil {
			return err
		}

		return authorizeOwner(actor, order.UserID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// orderChange mutates a loaded order and optionally returns an event to record.
type orderChange func(order *entity.Order, now time.Time) (*entity.AnalyticsEvent, error)

// mutate loads the order, checks access, applies change and saves the result.
// adminOnly restricts the change to administrators.
func (srv *orderService) mutate(ctx context.Context, actor *entity.User, id uuid.UUID, adminOnly bool, change orderChange) (*entity.Order, error) {
	if adminOnly {
		if err := requireAdmin(actor); err != nil {
			return nil, err
		}
	} else if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	var order *entity.Order
	var event *entity.AnalyticsEvent
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		var err error
		order, err = findOrder(ctx, orderRepo, id)
		if err != nil {
			return err
		}
		if err := authorizeOwner(actor, order.UserID); err != nil {
			return err
		}

		event, err = change(order, srv.now())
		if err != nil {
			return err
		}
		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		if event == nil {
			return nil
		}

		return srv.events.record(ctx, repoFactory.AnalyticsRepo(), event)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	if event != nil {
		srv.events.publish(ctx, event)
	}

	return order, nil
}

func (srv *orderService) CancelOrder(ctx context.Context, actor *entity.User, id uuid.UUID, reason string) (*entity.Order, error) {
	return srv.mutate(ctx, actor, id, false, func(order *entity.Order, now time.Time) (*entity.AnalyticsEvent, error) {
		if !order.IsCancellable() {
			return nil, errors.Wrapf(domainerrors.ErrOrderNotCancellable, "order is %s", order.Status)
		}

		order.Status = entity.OrderStatusCancelled
		order.CancelledAt = &now
		order.CancellationReason = reason

		return srv.orderEvent(order, actor, entity.EventTypeOrderCancelled, "cancel", map[string]any{"reason": reason}), nil
	})
}

func (srv *orderService) AddOrderNote(ctx context.Context, actor *entity.User, id uuid.UUID, message string) (*entity.Order, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("note message is required")
	}

	return srv.mutate(ctx, actor, id, false, func(order *entity.Order, now time.Time) (*entity.AnalyticsEvent, error) {
		order.AddNote(message, actor.ID, now)

		return nil, nil
	})
}

func (srv *orderService) RecordPayment(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.RecordPaymentInput) (*entity.Order, error) {
	return srv.mutate(ctx, actor, id, false, func(order *entity.Order, now time.Time) (*entity.AnalyticsEvent, error) {
		if order.Status == entity.OrderStatusCancelled {
			return nil, domainerrors.ErrOrderPaymentState.WrapMessage("order is cancelled")
		}
		if order.PaymentStatus == entity.PaymentStatusPaid || order.PaymentStatus == entity.PaymentStatusRefunded {
			return nil, domainerrors.ErrOrderPaymentState.WrapMessage("order is already paid")
		}

		order.PaymentMethod = input.PaymentMethod
		order.PaymentTransactionID = input.TransactionID
		if input.PaymentIntentID != "" {
			order.StripePaymentIntentID = input.PaymentIntentID
		}
		order.PaymentStatus = entity.PaymentStatusPaid
		order.PaidAt = &now

		return srv.orderEvent(order, actor, entity.EventTypeOrderPaid, "pay", map[string]any{
			"paymentMethod": input.PaymentMethod,
			"totalAmount":   order.TotalAmount,
		}), nil
	})
}

func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown order status %q", input.Status))
	}

	return srv.mutate(ctx, actor, id, true, func(order *entity.Order, now time.Time) (*entity.AnalyticsEvent, error) {
		from := order.Status
		if !from.CanTransitionTo(input.Status) {
			return nil, errors.Wrapf(domainerrors.ErrOrderInvalidTransition, "%s to %s", from, input.Status)
		}

		order.Status = input.Status
		if input.Status == entity.OrderStatusCancelled {
			order.CancelledAt = &now
		}
		if input.TrackingNumber != "" {
			order.TrackingNumber = input.TrackingNumber
		}
		if input.EstimatedDelivery != nil {
			order.EstimatedDelivery = input.EstimatedDelivery
		}
		if note := strings.TrimSpace(input.Note); note != "" {
			order.AddNote(note, actor.ID, now)
		}

		return srv.orderEvent(order, actor, entity.EventTypeOrderStatusUpdated, "status_update", map[string]any{
			"from": string(from),
			"to":   string(input.Status),
		}), nil
	})
}

func (srv *orderService) RefundOrder(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.RefundOrderInput) (*entity.Order, error) {
	return srv.mutate(ctx, actor, id, true, func(order *entity.Order, now time.Time) (*entity.AnalyticsEvent, error) {
		if order.PaymentStatus != entity.PaymentStatusPaid {
			return nil, domainerrors.ErrOrderPaymentState.WrapMessage("only paid orders can be refunded")
		}

		amount := order.TotalAmount
		if input.Amount != nil {
			amount = *input.Amount
		}
		if amount <= 0 || amount > order.TotalAmount {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("refund amount must be positive and not exceed the order total")
		}

		order.PaymentStatus = entity.PaymentStatusRefunded
		order.RefundedAt = &now
		order.RefundReason = input.Reason
		order.RefundAmount = &amount

		return srv.orderEvent(order, actor, entity.EventTypeOrderRefunded, "refund", map[string]any{
			"amount": amount,
			"reason": input.Reason,
		}), nil
	})
}
