package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that is malformed, expired or carries a bad signature.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded payload of a session token.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates signed session tokens.
type TokenService interface {
	// IssueToken signs a token for the subject using the configured lifetime.
	IssueToken(userID uuid.UUID) (string, error)

	// IssueTokenWithTTL signs a token that expires after ttl.
	IssueTokenWithTTL(userID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken returns the claims of a valid token, or ErrInvalidToken.
	ValidateToken(tokenString string) (*Claims, error)
}
