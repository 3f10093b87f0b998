package repository

import (
	"context"
	"errors"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists profiles.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error)
	ListPublic(ctx context.Context, limit, offset int) ([]*entity.Profile, error)

	// UsernameExists reports whether the handle is already in use.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Create persists a new profile. A taken username yields domainerrors.ErrUsernameTaken.
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	Count(ctx context.Context) (int64, error)
}
