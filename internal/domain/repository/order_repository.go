package repository

import (
	"context"
	"errors"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicateOrderNumber is returned by Create when the order number is already taken.
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

// OrderRepository persists orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	Count(ctx context.Context) (int64, error)
}
