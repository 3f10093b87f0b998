package impl

import (
	"context"
	"log/slog"

	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) GetDashboard(ctx context.Context, actor *entity.User) (*usecase.DashboardSummary, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	summary := &usecase.DashboardSummary{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if summary.TotalUsers, err = repoFactory.UserRepo().Count(ctx); err != nil {
			return errors.Wrap(err, "failed to count users")
		}
		if summary.TotalProfiles, err = repoFactory.ProfileRepo().Count(ctx); err != nil {
			return errors.Wrap(err, "failed to count profiles")
		}
		if summary.TotalOrders, err = repoFactory.OrderRepo().Count(ctx); err != nil {
			return errors.Wrap(err, "failed to count orders")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	return summary, nil
}

func (srv *adminService) ListUsers(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	limit, offset = normalizePage(limit, offset)

	var users []*entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		users, err = repoFactory.UserRepo().List(ctx, limit, offset)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser changes an account's role or status. Only a super admin may grant
// the super admin role or modify an existing super admin.
func (srv *adminService) UpdateUser(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + input.Role.String())
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status " + string(*input.Status))
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage(id.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		grantsSuper := input.Role != nil && *input.Role == entity.RoleSuperAdmin
		if (grantsSuper || user.Role == entity.RoleSuperAdmin) && actor.Role != entity.RoleSuperAdmin {
			return errors.Wrap(domainerrors.ErrForbidden, "super admin role required")
		}

		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.Status != nil {
			user.Status = *input.Status
		}

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated by admin",
		slog.Any("userID", user.ID),
		slog.Any("actorID", actor.ID),
		slog.String("role", user.Role.String()),
		slog.String("status", string(user.Status)),
	)

	return user, nil
}
