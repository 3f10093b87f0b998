package handler

import (
	"net/http"
	"testing"

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

func newAdminTestEcho(t *testing.T, actor *entity.User) (*echo.Echo, *mockUsecase.MockAdminUsecase) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/admin", withActor(actor))
	g.GET("/dashboard", h.GetDashboard)
	g.GET("/users", h.ListUsers)
	g.PUT("/users/:id", h.UpdateUser)

	return e, uc
}

func TestAdminHandler_GetDashboard(t *testing.T) {
	admin := newUser(entity.RoleAdmin)
	e, uc := newAdminTestEcho(t, admin)
	uc.EXPECT().GetDashboard(mock.Anything, admin).
		Return(&usecase.DashboardSummary{TotalUsers: 12, TotalProfiles: 20, TotalOrders: 3}, nil)

	rec := doJSON(e, http.MethodGet, "/api/admin/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary":{"totalUsers":12,"totalProfiles":20,"totalOrders":3}}`, string(decodeEnvelope(t, rec).Data))
}

func TestAdminHandler_UpdateUser(t *testing.T) {
	admin := newUser(entity.RoleAdmin)
	id := uuid.New()

	t.Run("maps role and status", func(t *testing.T) {
		e, uc := newAdminTestEcho(t, admin)
		role := entity.RoleAdmin
		status := entity.UserStatusSuspended
		uc.EXPECT().UpdateUser(mock.Anything, admin, id, &usecase.UpdateUserInput{Role: &role, Status: &status}).
			Return(&entity.User{ID: id, Role: role, Status: status}, nil)

		rec := doJSON(e, http.MethodPut, "/api/admin/users/"+id.String(), `{"role":"admin","status":"suspended"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		out := decodeData[UserResponse](t, rec)
		assert.Equal(t, entity.UserStatusSuspended, out.Status)
	})

	t.Run("unknown role", func(t *testing.T) {
		e, _ := newAdminTestEcho(t, admin)

		rec := doJSON(e, http.MethodPut, "/api/admin/users/"+id.String(), `{"role":"owner"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("super admin grant denied", func(t *testing.T) {
		e, uc := newAdminTestEcho(t, admin)
		uc.EXPECT().UpdateUser(mock.Anything, admin, id, mock.Anything).Return(nil, domainerrors.ErrForbidden)

		rec := doJSON(e, http.MethodPut, "/api/admin/users/"+id.String(), `{"role":"super_admin"}`)

		requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func TestAdminHandler_ListUsers(t *testing.T) {
	admin := newUser(entity.RoleAdmin)
	e, uc := newAdminTestEcho(t, admin)
	uc.EXPECT().ListUsers(mock.Anything, admin, 50, 100).
		Return([]*entity.User{{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hash"}}, nil)

	rec := doJSON(e, http.MethodGet, "/api/admin/users?limit=50&skip=100", "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[[]UserResponse](t, rec)
	require.Len(t, out, 1)
	assert.Equal(t, "a@example.com", out[0].Email)
	assert.NotContains(t, rec.Body.String(), "hash")
}
