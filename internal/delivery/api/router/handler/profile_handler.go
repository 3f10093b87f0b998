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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreateProfileRequest represents the request body for adding a profile
type CreateProfileRequest struct {
	DisplayName string  `json:"displayName" validate:"required,max=100"`
	Username    *string `json:"username" validate:"omitempty,handle,max=50"`
	Bio         string  `json:"bio" validate:"max=500"`
	JobTitle    string  `json:"jobTitle" validate:"max=100"`
	Company     string  `json:"company" validate:"max=100"`
	Location    string  `json:"location" validate:"max=100"`
	Website     string  `json:"website" validate:"omitempty,max=200"`
}

// UpdateProfileRequest represents a partial profile update. Absent fields are left untouched.
type UpdateProfileRequest struct {
	DisplayName  *string                 `json:"displayName" validate:"omitempty,max=100"`
	Username     *string                 `json:"username" validate:"omitempty,handle,max=50"`
	Bio          *string                 `json:"bio" validate:"omitempty,max=500"`
	JobTitle     *string                 `json:"jobTitle" validate:"omitempty,max=100"`
	Company      *string                 `json:"company" validate:"omitempty,max=100"`
	Location     *string                 `json:"location" validate:"omitempty,max=100"`
	Website      *string                 `json:"website" validate:"omitempty,max=200"`
	Avatar       *string                 `json:"avatar"`
	Theme        *string                 `json:"theme" validate:"omitempty,max=50"`
	IsPublic     *bool                   `json:"isPublic"`
	SocialLinks  *entity.SocialLinks     `json:"socialLinks"`
	ContactInfo  *entity.ContactInfo     `json:"contactInfo"`
	CustomFields *[]entity.CustomField   `json:"customFields"`
	Settings     *entity.ProfileSettings `json:"settings"`
}

func (r *UpdateProfileRequest) patch() entity.ProfilePatch {
	return entity.ProfilePatch{
		DisplayName:  r.DisplayName,
		Username:     r.Username,
		Bio:          r.Bio,
		JobTitle:     r.JobTitle,
		Company:      r.Company,
		Location:     r.Location,
		Website:      r.Website,
		Avatar:       r.Avatar,
		Theme:        r.Theme,
		IsPublic:     r.IsPublic,
		SocialLinks:  r.SocialLinks,
		ContactInfo:  r.ContactInfo,
		CustomFields: r.CustomFields,
		Settings:     r.Settings,
	}
}

// CreateProfile handles adding a profile for the caller.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), actorOf(c), &usecase.CreateProfileInput{
		DisplayName: req.DisplayName,
		Username:    req.Username,
		Bio:         req.Bio,
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Location:    req.Location,
		Website:     req.Website,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProfileResponse(profile))
}

// ListMyProfiles returns the caller's profiles.
func (h *ProfileHandler) ListMyProfiles(c echo.Context) error {
	profiles, err := h.profileUC.ListMyProfiles(c.Request().Context(), actorOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponses(profiles))
}

// ListPublicProfiles returns a page of public profiles.
func (h *ProfileHandler) ListPublicProfiles(c echo.Context) error {
	limit, offset := page(c)

	profiles, err := h.profileUC.ListPublicProfiles(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponses(profiles))
}

// GetProfile returns a profile by ID.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile))
}

// GetProfileByUsername returns a profile by its public handle.
func (h *ProfileHandler) GetProfileByUsername(c echo.Context) error {
	profile, err := h.profileUC.GetProfileByUsername(c.Request().Context(), actorOf(c), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile))
}

// UpdateProfile applies a partial update.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), actorOf(c), id, req.patch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile))
}

// ToggleProfileVisibility flips the profile between public and private.
func (h *ProfileHandler) ToggleProfileVisibility(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.ToggleProfileVisibility(c.Request().Context(), actorOf(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile))
}
