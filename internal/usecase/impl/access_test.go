package impl

import (
	"testing"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOwner(t *testing.T) {
	ownerID := uuid.New()
	owner := &entity.User{ID: ownerID, Role: entity.RoleUser}
	stranger := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	superAdmin := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin}

	assert.NoError(t, authorizeOwner(owner, ownerID))
	assert.NoError(t, authorizeOwner(admin, ownerID))
	assert.NoError(t, authorizeOwner(superAdmin, ownerID))
	assert.ErrorIs(t, authorizeOwner(stranger, ownerID), domainerrors.ErrForbidden)
	assert.ErrorIs(t, authorizeOwner(nil, ownerID), domainerrors.ErrUnauthenticated)
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, requireAdmin(&entity.User{Role: entity.RoleAdmin}))
	assert.NoError(t, requireAdmin(&entity.User{Role: entity.RoleSuperAdmin}))
	assert.ErrorIs(t, requireAdmin(&entity.User{Role: entity.RoleUser}), domainerrors.ErrForbidden)
	assert.ErrorIs(t, requireAdmin(nil), domainerrors.ErrUnauthenticated)
}

func TestRequirePermission(t *testing.T) {
	user := &entity.User{Role: entity.RoleUser, Permissions: []entity.Permission{entity.PermissionProfileEdit}}

	assert.NoError(t, requirePermission(user, entity.PermissionProfileEdit))
	assert.ErrorIs(t, requirePermission(user, entity.PermissionQRGenerate), domainerrors.ErrForbidden)
	assert.NoError(t, requirePermission(&entity.User{Role: entity.RoleAdmin}, entity.PermissionQRGenerate))
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: 10, wantOffset: 0},
		{name: "passthrough", limit: 25, offset: 50, wantLimit: 25, wantOffset: 50},
		{name: "clamped", limit: 1000, offset: -3, wantLimit: 100, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := normalizePage(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
