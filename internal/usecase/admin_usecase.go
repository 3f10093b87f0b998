package usecase

import (
	"context"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardSummary holds the platform-wide counters.
type DashboardSummary struct {
	TotalUsers    int64
	TotalProfiles int64
	TotalOrders   int64
}

// UpdateUserInput changes an account's role or status. Nil fields are left untouched.
type UpdateUserInput struct {
	Role   *entity.Role
	Status *entity.UserStatus
}

// AdminUsecase defines operations reserved for administrators.
type AdminUsecase interface {
	GetDashboard(ctx context.Context, actor *entity.User) (*DashboardSummary, error)
	ListUsers(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.User, error)
	UpdateUser(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
}
