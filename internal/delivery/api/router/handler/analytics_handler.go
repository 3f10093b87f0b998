package handler

import (
	"log/slog"
	"net/http"

	"taponn/internal/delivery/api/response"
	"taponn/internal/domain/entity"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler records client-side analytics events.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// RecordEventRequest represents an analytics event sent by the frontend
type RecordEventRequest struct {
	EventType     string               `json:"eventType" validate:"required,max=100"`
	EventCategory string               `json:"eventCategory" validate:"max=100"`
	EventAction   string               `json:"eventAction" validate:"max=100"`
	ProfileID     string               `json:"profileId" validate:"omitempty,uuid"`
	QRCodeID      string               `json:"qrCodeId" validate:"omitempty,uuid"`
	Metadata      entity.EventMetadata `json:"metadata"`
	Session       map[string]any       `json:"session"`
	UserJourney   map[string]any       `json:"userJourney"`
	Performance   map[string]any       `json:"performance"`
	Conversion    map[string]any       `json:"conversion"`
}

// RecordEventResponse acknowledges a stored event.
type RecordEventResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}

// RecordEvent stores an analytics event. Authentication is optional.
func (h *AnalyticsHandler) RecordEvent(c echo.Context) error {
	var req RecordEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analytics event")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profileID, err := optionalID(req.ProfileID, "profileId")
	if err != nil {
		return err
	}
	qrCodeID, err := optionalID(req.QRCodeID, "qrCodeId")
	if err != nil {
		return err
	}

	id, err := h.analyticsUC.RecordEvent(c.Request().Context(), actorOf(c), &usecase.RecordEventInput{
		EventType:     req.EventType,
		EventCategory: req.EventCategory,
		EventAction:   req.EventAction,
		ProfileID:     profileID,
		QRCodeID:      qrCodeID,
		Metadata:      req.Metadata,
		Session:       req.Session,
		UserJourney:   req.UserJourney,
		Performance:   req.Performance,
		Conversion:    req.Conversion,
		IPAddress:     c.RealIP(),
		UserAgent:     c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &RecordEventResponse{Success: true, ID: id})
}

func optionalID(raw, field string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errInvalidID.WithDetails(field + " must be a UUID")
	}

	return &id, nil
}
