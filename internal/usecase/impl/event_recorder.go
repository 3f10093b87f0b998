package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	"taponn/internal/domain/repository"
	"taponn/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// eventRecorder stores analytics events and forwards them to the event publisher.
type eventRecorder struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newEventRecorder(publisher service.EventPublisher, logger *slog.Logger) eventRecorder {
	return eventRecorder{publisher: publisher, logger: logger}
}

// record persists event through repo. It must run inside the caller's transaction.
func (r eventRecorder) record(ctx context.Context, repo repository.AnalyticsRepository, event *entity.AnalyticsEvent) error {
	if event.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate event id")
		}
		event.ID = id
	}
	if event.EventCategory == "" {
		event.EventCategory = entity.DefaultEventCategory
	}

	if err := repo.Create(ctx, event); err != nil {
		return errors.Wrap(err, "failed to store analytics event")
	}

	return nil
}

// publish forwards committed events. Failures are logged and never returned.
func (r eventRecorder) publish(ctx context.Context, events ...*entity.AnalyticsEvent) {
	if r.publisher == nil {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	for _, event := range events {
		msg := toEventMessage(event)
		msg.RequestID = requestID

		if err := r.publisher.PublishAnalyticsEvent(ctx, msg); err != nil {
			logger.Warn("Failed to publish analytics event",
				slog.String("eventType", event.EventType),
				slog.Any("eventID", event.ID),
				slog.Any("error", err),
			)
		}
	}
}

func toEventMessage(event *entity.AnalyticsEvent) *service.AnalyticsEventMessage {
	occurredAt := event.CreatedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	metadata := map[string]any{}
	if event.Metadata.IPAddress != "" {
		metadata["ipAddress"] = event.Metadata.IPAddress
	}
	if event.Metadata.UserAgent != "" {
		metadata["userAgent"] = event.Metadata.UserAgent
	}
	if event.Metadata.Referrer != "" {
		metadata["referrer"] = event.Metadata.Referrer
	}
	for k, v := range event.Metadata.Extra {
		metadata[k] = v
	}

	return &service.AnalyticsEventMessage{
		EventID:       event.ID.String(),
		EventType:     event.EventType,
		EventCategory: event.EventCategory,
		EventAction:   event.EventAction,
		UserID:        optionalID(event.UserID),
		ProfileID:     optionalID(event.ProfileID),
		QRCodeID:      optionalID(event.QRCodeID),
		Metadata:      metadata,
		OccurredAt:    occurredAt,
	}
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	return id.String()
}
