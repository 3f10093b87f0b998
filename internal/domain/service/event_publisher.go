package service

import (
	"context"
	"time"
)

// AnalyticsEventMessage is the wire form of a recorded analytics event.
type AnalyticsEventMessage struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	EventID       string         `json:"event_id"`
	EventType     string         `json:"event_type"`
	EventCategory string         `json:"event_category"`
	EventAction   string         `json:"event_action"`
	UserID        string         `json:"user_id,omitempty"`
	ProfileID     string         `json:"profile_id,omitempty"`
	QRCodeID      string         `json:"qr_code_id,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnalyticsEvent forwards a recorded event to downstream consumers
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
