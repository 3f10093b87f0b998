package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) CreateProfile(ctx context.Context, actor *entity.User, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile := entity.NewProfile(actor.ID, input.DisplayName)
	profile.Bio = input.Bio
	profile.JobTitle = input.JobTitle
	profile.Company = input.Company
	profile.Location = input.Location
	profile.Website = input.Website
	if input.Username != nil {
		if username := strings.TrimSpace(*input.Username); username != "" {
			profile.Username = &username
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProfileRepo().Create(ctx, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Debug("Profile created", slog.Any("profileID", profile.ID), slog.Any("userID", actor.ID))

	return profile, nil
}

func (srv *profileService) ListMyProfiles(ctx context.Context, actor *entity.User) ([]*entity.Profile, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	var profiles []*entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profiles, err = repoFactory.ProfileRepo().ListByUser(ctx, actor.ID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

func (srv *profileService) ListPublicProfiles(ctx context.Context, limit, offset int) ([]*entity.Profile, error) {
	limit, offset = normalizePage(limit, offset)

	var profiles []*entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profiles, err = repoFactory.ProfileRepo().ListPublic(ctx, limit, offset)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public profiles")
	}

	return profiles, nil
}

func (srv *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = findProfile(ctx, repoFactory.ProfileRepo(), id)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

func (srv *profileService) GetProfileByUsername(ctx context.Context, actor *entity.User, username string) (*entity.Profile, error) {
	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = repoFactory.ProfileRepo().FindByUsername(ctx, username)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound.WrapMessage(username)
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile by username")
	}

	if !profile.IsPublic && !actor.CanAccess(profile.UserID) {
		return nil, domainerrors.ErrProfilePrivate
	}

	return profile, nil
}

func (srv *profileService) UpdateProfile(ctx context.Context, actor *entity.User, id uuid.UUID, patch entity.ProfilePatch) (*entity.Profile, error) {
	return srv.mutate(ctx, actor, id, patch.Apply)
}

func (srv *profileService) ToggleProfileVisibility(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Profile, error) {
	return srv.mutate(ctx, actor, id, func(p *entity.Profile) {
		p.IsPublic = !p.IsPublic
	})
}

// mutate loads a profile the actor may edit, applies change and saves it.
func (srv *profileService) mutate(ctx context.Context, actor *entity.User, id uuid.UUID, change func(*entity.Profile)) (*entity.Profile, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		var err error
		profile, err = findProfile(ctx, profileRepo, id)
		if err != nil {
			return err
		}
		if err := authorizeOwner(actor, profile.UserID); err != nil {
			return err
		}

		change(profile)

		return profileRepo.Update(ctx, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}
