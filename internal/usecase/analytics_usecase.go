package usecase

import (
	"context"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordEventInput defines an analytics event sent by a client.
// IPAddress and UserAgent come from the transport, not from the payload.
type RecordEventInput struct {
	EventType     string
	EventCategory string
	EventAction   string
	ProfileID     *uuid.UUID
	QRCodeID      *uuid.UUID

	Metadata    entity.EventMetadata
	Session     map[string]any
	UserJourney map[string]any
	Performance map[string]any
	Conversion  map[string]any

	IPAddress string
	UserAgent string
}

// AnalyticsUsecase records analytics events.
type AnalyticsUsecase interface {
	// RecordEvent stores the event and links it to actor when the caller is authenticated.
	RecordEvent(ctx context.Context, actor *entity.User, input *RecordEventInput) (uuid.UUID, error)
}
