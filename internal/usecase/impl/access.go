// Package impl contains the application-specific business rules implementations.
package impl

import (
	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// authorizeOwner allows the resource owner and administrators.
func authorizeOwner(actor *entity.User, ownerID uuid.UUID) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !actor.CanAccess(ownerID) {
		return errors.Wrap(domainerrors.ErrForbidden, "caller does not own the resource")
	}

	return nil
}

func requireAdmin(actor *entity.User) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	return nil
}

func requirePermission(actor *entity.User, permission entity.Permission) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !actor.HasPermission(permission) {
		return errors.Wrapf(domainerrors.ErrForbidden, "missing permission %s", permission)
	}

	return nil
}

// normalizePage applies the default page size and clamps out-of-range values.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
