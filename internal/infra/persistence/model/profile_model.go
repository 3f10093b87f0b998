package model

import (
	"time"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. Username is nullable so the unique
// index only applies to profiles that picked a handle.
type ProfileModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Username *string   `gorm:"type:varchar(50);uniqueIndex:idx_profiles_username"`

	DisplayName string `gorm:"type:varchar(100)"`
	Bio         string `gorm:"type:text"`
	JobTitle    string `gorm:"type:varchar(100)"`
	Company     string `gorm:"type:varchar(100)"`
	Location    string `gorm:"type:varchar(100)"`
	Website     string `gorm:"type:varchar(255)"`
	Avatar      string `gorm:"type:text"`
	Theme       string `gorm:"type:varchar(50);not null;default:default"`
	IsPublic    bool   `gorm:"not null;default:true;index"`

	SocialLinks  entity.SocialLinks     `gorm:"type:jsonb;serializer:json"`
	ContactInfo  entity.ContactInfo     `gorm:"type:jsonb;serializer:json"`
	CustomFields []entity.CustomField   `gorm:"type:jsonb;serializer:json"`
	Settings     entity.ProfileSettings `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
