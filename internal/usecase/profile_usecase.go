package usecase

import (
	"context"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProfileInput defines the fields accepted when a user adds a profile.
type CreateProfileInput struct {
	DisplayName string
	Username    *string
	Bio         string
	JobTitle    string
	Company     string
	Location    string
	Website     string
}

// ProfileUsecase defines profile operations. The actor is the authenticated caller.
type ProfileUsecase interface {
	CreateProfile(ctx context.Context, actor *entity.User, input *CreateProfileInput) (*entity.Profile, error)
	ListMyProfiles(ctx context.Context, actor *entity.User) ([]*entity.Profile, error)
	ListPublicProfiles(ctx context.Context, limit, offset int) ([]*entity.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// GetProfileByUsername returns the profile behind a handle. Private profiles are
	// only visible to their owner and administrators; actor may be nil.
	GetProfileByUsername(ctx context.Context, actor *entity.User, username string) (*entity.Profile, error)

	UpdateProfile(ctx context.Context, actor *entity.User, id uuid.UUID, patch entity.ProfilePatch) (*entity.Profile, error)
	ToggleProfileVisibility(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Profile, error)
}
