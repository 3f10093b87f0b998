package model

import (
	"time"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// QRCodeModel mirrors the 'qr_codes' table.
type QRCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Type      string    `gorm:"type:varchar(20);not null"`

	Content map[string]any `gorm:"type:jsonb;serializer:json"`
	Data    string         `gorm:"type:text;not null"`

	QRImage   string `gorm:"type:text"`
	Logo      string `gorm:"type:text"`
	ScanCount int    `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"not null;default:true"`

	Settings  entity.QRSettings  `gorm:"type:jsonb;serializer:json"`
	Analytics entity.QRAnalytics `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (QRCodeModel) TableName() string {
	return "qr_codes"
}
