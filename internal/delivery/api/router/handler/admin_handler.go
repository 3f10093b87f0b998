package handler

import (
	"log/slog"
	"net/http"

	"taponn/internal/delivery/api/response"
	"taponn/internal/domain/entity"
	"taponn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the administrator console.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

type DashboardSummaryResponse struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalProfiles int64 `json:"totalProfiles"`
	TotalOrders   int64 `json:"totalOrders"`
}

type DashboardResponse struct {
	Summary DashboardSummaryResponse `json:"summary"`
}

// UpdateUserRequest changes an account's role or status
type UpdateUserRequest struct {
	Role   *string `json:"role" validate:"omitempty,oneof=user admin super_admin"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// GetDashboard returns platform-wide counters.
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	summary, err := h.adminUC.GetDashboard(c.Request().Context(), actorOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &DashboardResponse{
		Summary: DashboardSummaryResponse{
			TotalUsers:    summary.TotalUsers,
			TotalProfiles: summary.TotalProfiles,
			TotalOrders:   summary.TotalOrders,
		},
	})
}

// ListUsers returns a page of accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	limit, offset := page(c)

	users, err := h.adminUC.ListUsers(c.Request().Context(), actorOf(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateUser changes an account's role or status.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateUserInput{}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}
	if req.Status != nil {
		status := entity.UserStatus(*req.Status)
		input.Status = &status
	}

	user, err := h.adminUC.UpdateUser(c.Request().Context(), actorOf(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
