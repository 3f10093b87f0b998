package model

import (
	"time"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsEventModel mirrors the append-only 'analytics_events' table.
type AnalyticsEventModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	ProfileID *uuid.UUID `gorm:"type:uuid;index"`
	QRCodeID  *uuid.UUID `gorm:"column:qr_code_id;type:uuid;index"`

	EventType     string `gorm:"type:varchar(50);not null;index"`
	EventCategory string `gorm:"type:varchar(50);not null"`
	EventAction   string `gorm:"type:varchar(100);not null"`

	Metadata    entity.EventMetadata `gorm:"type:jsonb;serializer:json"`
	Session     map[string]any       `gorm:"type:jsonb;serializer:json"`
	UserJourney map[string]any       `gorm:"type:jsonb;serializer:json"`
	Performance map[string]any       `gorm:"type:jsonb;serializer:json"`
	Conversion  map[string]any       `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}
