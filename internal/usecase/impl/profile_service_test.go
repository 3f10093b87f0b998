package impl

import (
	"context"
	"testing"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service usecase.ProfileUsecase
	repos   *repoFixtures
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	repos := newRepoFixtures(t)

	return profileServiceFixtures{
		service: NewProfileService(passthroughTx(t, repos), newDiscardLogger()),
		repos:   repos,
	}
}

func newOwnedProfile(owner uuid.UUID) *entity.Profile {
	profile := entity.NewProfile(owner, "Jane Doe")
	profile.ID = uuid.New()
	profile.Company = "Acme"

	return profile
}

func TestProfileService_UpdateProfile_PartialPatchKeepsOtherFields(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	profile := newOwnedProfile(owner.ID)

	fx.repos.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.repos.profiles.EXPECT().Update(ctx, profile).Return(nil)

	bio := "Builder of things"
	got, err := fx.service.UpdateProfile(ctx, owner, profile.ID, entity.ProfilePatch{Bio: &bio})

	require.NoError(t, err)
	assert.Equal(t, "Builder of things", got.Bio)
	assert.Equal(t, "Jane Doe", got.DisplayName)
	assert.Equal(t, "Acme", got.Company)
}

func TestProfileService_UpdateProfile_Authorization(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bio := "changed"

	tests := []struct {
		name    string
		actor   *entity.User
		wantErr error
	}{
		{name: "owner", actor: &entity.User{ID: ownerID, Role: entity.RoleUser}},
		{name: "admin", actor: &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}},
		{name: "super admin", actor: &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin}},
		{name: "stranger", actor: &entity.User{ID: uuid.New(), Role: entity.RoleUser}, wantErr: domainerrors.ErrForbidden},
		{name: "anonymous", actor: nil, wantErr: domainerrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			profile := newOwnedProfile(ownerID)

			if tt.actor != nil {
				fx.repos.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
			}
			if tt.wantErr == nil {
				fx.repos.profiles.EXPECT().Update(ctx, profile).Return(nil)
			}

			_, err := fx.service.UpdateProfile(ctx, tt.actor, profile.ID, entity.ProfilePatch{Bio: &bio})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repos.profiles.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.UpdateProfile(ctx, &entity.User{ID: uuid.New()}, id, entity.ProfilePatch{})

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GetProfileByUsername_PrivateProfile(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	tests := []struct {
		name    string
		actor   *entity.User
		wantErr error
	}{
		{name: "anonymous", actor: nil, wantErr: domainerrors.ErrProfilePrivate},
		{name: "stranger", actor: &entity.User{ID: uuid.New(), Role: entity.RoleUser}, wantErr: domainerrors.ErrProfilePrivate},
		{name: "owner", actor: &entity.User{ID: ownerID, Role: entity.RoleUser}},
		{name: "admin", actor: &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			profile := newOwnedProfile(ownerID)
			profile.IsPublic = false

			fx.repos.profiles.EXPECT().FindByUsername(ctx, "janedoe1234").Return(profile, nil)

			got, err := fx.service.GetProfileByUsername(ctx, tt.actor, "janedoe1234")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, profile, got)
		})
	}
}

func TestProfileService_GetProfileByUsername_PublicIsVisibleToAnyone(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	profile := newOwnedProfile(uuid.New())

	fx.repos.profiles.EXPECT().FindByUsername(ctx, "janedoe1234").Return(profile, nil)

	got, err := fx.service.GetProfileByUsername(ctx, nil, "janedoe1234")

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfileService_CreateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	handle := " jane "

	fx.repos.profiles.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.UserID == actor.ID && p.Username != nil && *p.Username == "jane" && p.IsPublic
		})).
		Return(nil)

	got, err := fx.service.CreateProfile(ctx, actor, &usecase.CreateProfileInput{
		DisplayName: "Jane",
		Username:    &handle,
		JobTitle:    "Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.JobTitle)
	assert.Equal(t, entity.DefaultTheme, got.Theme)
}

func TestProfileService_CreateProfile_UsernameTaken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	handle := "jane"

	fx.repos.profiles.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(domainerrors.ErrUsernameTaken.WrapMessage("username already exists"))

	_, err := fx.service.CreateProfile(ctx, &entity.User{ID: uuid.New()}, &usecase.CreateProfileInput{DisplayName: "Jane", Username: &handle})

	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestProfileService_ToggleProfileVisibility(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	profile := newOwnedProfile(owner.ID)

	fx.repos.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.repos.profiles.EXPECT().Update(ctx, profile).Return(nil)

	got, err := fx.service.ToggleProfileVisibility(ctx, owner, profile.ID)

	require.NoError(t, err)
	assert.False(t, got.IsPublic)
}

func TestProfileService_ListPublicProfiles_ClampsPage(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().ListPublic(ctx, maxPageLimit, 0).Return([]*entity.Profile{}, nil)

	_, err := fx.service.ListPublicProfiles(ctx, 5000, -3)

	require.NoError(t, err)
}
