package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/domain/service"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	txManager repository.TransactionManager
	events    eventRecorder

	now func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		txManager: params.TxManager,
		events:    newEventRecorder(params.Publisher, params.Logger),
		now:       time.Now,
	}
}

// RecordEvent stores a client event. The caller's IP address and user agent
// overwrite whatever the payload claims.
func (srv *analyticsService) RecordEvent(ctx context.Context, actor *entity.User, input *usecase.RecordEventInput) (uuid.UUID, error) {
	eventType := strings.TrimSpace(input.EventType)
	if eventType == "" {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("eventType is required")
	}

	metadata := input.Metadata
	metadata.IPAddress = input.IPAddress
	metadata.UserAgent = input.UserAgent
	if metadata.Timestamp.IsZero() {
		metadata.Timestamp = srv.now()
	}

	event := &entity.AnalyticsEvent{
		ProfileID:     input.ProfileID,
		QRCodeID:      input.QRCodeID,
		EventType:     eventType,
		EventCategory: input.EventCategory,
		EventAction:   input.EventAction,
		Metadata:      metadata,
		Session:       input.Session,
		UserJourney:   input.UserJourney,
		Performance:   input.Performance,
		Conversion:    input.Conversion,
	}
	if actor != nil {
		userID := actor.ID
		event.UserID = &userID
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.events.record(ctx, repoFactory.AnalyticsRepo(), event)
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to record analytics event")
	}

	srv.events.publish(ctx, event)

	return event.ID, nil
}
