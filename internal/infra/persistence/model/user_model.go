package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application (UUIDv7).
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:user;index"`
	Status       string    `gorm:"type:varchar(20);not null;default:active"`
	Permissions  []string  `gorm:"type:jsonb;serializer:json"`

	LoginAttempts int `gorm:"not null;default:0"`
	LockUntil     *time.Time
	IsLocked      bool `gorm:"not null;default:false"`
	LastLogin     *time.Time

	EmailVerificationToken   string `gorm:"type:varchar(255)"`
	EmailVerificationExpires *time.Time
	PasswordResetToken       string `gorm:"type:varchar(255)"`
	PasswordResetExpires     *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
