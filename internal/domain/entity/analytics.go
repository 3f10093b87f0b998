package entity

import (
	"time"

	"github.com/google/uuid"
)

const DefaultEventCategory = "engagement"

// Well-known event types emitted by the server itself.
const (
	EventTypeQRScan             = "qr_scan"
	EventTypeOrderCreated       = "order_created"
	EventTypeOrderCancelled     = "order_cancelled"
	EventTypeOrderStatusUpdated = "order_status_updated"
	EventTypeOrderPaid          = "order_paid"
	EventTypeOrderRefunded      = "order_refunded"
)

// AnalyticsEvent is an append-only record of something that happened.
type AnalyticsEvent struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	ProfileID *uuid.UUID
	QRCodeID  *uuid.UUID

	EventType     string
	EventCategory string
	EventAction   string

	Metadata    EventMetadata
	Session     map[string]any
	UserJourney map[string]any
	Performance map[string]any
	Conversion  map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventMetadata struct {
	IPAddress string         `json:"ipAddress,omitempty"`
	UserAgent string         `json:"userAgent,omitempty"`
	Referrer  string         `json:"referrer,omitempty"`
	Device    string         `json:"device,omitempty"`
	Location  *EventLocation `json:"location,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"sessionId,omitempty"`
	Source    string         `json:"source,omitempty"`
	Platform  string         `json:"platform,omitempty"`
	Browser   string         `json:"browser,omitempty"`
	Language  string         `json:"language,omitempty"`

	// Extra carries server-side attributes such as order numbers.
	Extra map[string]any `json:"extra,omitempty"`
}

type EventLocation struct {
	Country  string `json:"country,omitempty"`
	Region   string `json:"region,omitempty"`
	City     string `json:"city,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}
