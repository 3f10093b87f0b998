package postgres

import (
	"context"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a GORM-backed order repository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create persists a new order. A clash on the order number is reported as
// repository.ErrDuplicateOrderNumber so the caller can pick another number.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate order id")
		}
		order.ID = id
	}

	orderM := fromOrderDomain(order)
	// The nested transaction becomes a savepoint inside an outer transaction, so a
	// unique violation leaves the outer transaction usable for a retry.
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(orderM).Error
	})
	if err != nil {
		if isUniqueViolationOn(err, constraintOrdersOrderNumber) {
			return repository.ErrDuplicateOrderNumber
		}

		return orderWriteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Save(orderM).Error; err != nil {
		return orderWriteError(err, "failed to update order")
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count orders")
	}

	return count, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                    data.ID,
		UserID:                data.UserID,
		OrderNumber:           data.OrderNumber,
		ProductType:           data.ProductType,
		Quantity:              data.Quantity,
		Items:                 data.Items,
		TotalAmount:           data.TotalAmount,
		Status:                entity.OrderStatus(data.Status),
		ShippingAddress:       data.ShippingAddress,
		PaymentStatus:         entity.PaymentStatus(data.PaymentStatus),
		StripePaymentIntentID: data.StripePaymentIntentID,
		TrackingNumber:        data.TrackingNumber,
		EstimatedDelivery:     data.EstimatedDelivery,
		Notes:                 data.Notes,
		PaymentMethod:         data.PaymentMethod,
		PaymentTransactionID:  data.PaymentTransactionID,
		PaidAt:                data.PaidAt,
		CancelledAt:           data.CancelledAt,
		CancellationReason:    data.CancellationReason,
		RefundedAt:            data.RefundedAt,
		RefundReason:          data.RefundReason,
		RefundAmount:          data.RefundAmount,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		OrderNumber:           data.OrderNumber,
		ProductType:           data.ProductType,
		Quantity:              data.Quantity,
		Items:                 data.Items,
		TotalAmount:           data.TotalAmount,
		Status:                string(data.Status),
		ShippingAddress:       data.ShippingAddress,
		PaymentStatus:         string(data.PaymentStatus),
		StripePaymentIntentID: data.StripePaymentIntentID,
		TrackingNumber:        data.TrackingNumber,
		EstimatedDelivery:     data.EstimatedDelivery,
		Notes:                 data.Notes,
		PaymentMethod:         data.PaymentMethod,
		PaymentTransactionID:  data.PaymentTransactionID,
		PaidAt:                data.PaidAt,
		CancelledAt:           data.CancelledAt,
		CancellationReason:    data.CancellationReason,
		RefundedAt:            data.RefundedAt,
		RefundReason:          data.RefundReason,
		RefundAmount:          data.RefundAmount,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func orderWriteError(err error, msg string) error {
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("order quantity and total must not be negative")
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}
