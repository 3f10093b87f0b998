package postgres

import (
	"context"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a GORM-backed profile repository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// ListByUser returns every profile owned by the user, oldest first.
func (repo *profileRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&profileMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles by user")
	}

	return toProfileDomains(profileMs), nil
}

// ListPublic returns public profiles, newest first.
func (repo *profileRepository) ListPublic(ctx context.Context, limit, offset int) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&profileMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list public profiles")
	}

	return toProfileDomains(profileMs), nil
}

func (repo *profileRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check username")
	}

	return count > 0, nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate profile id")
		}
		profile.ID = id
	}

	profileM := fromProfileDomain(profile)
	// The nested transaction becomes a savepoint inside an outer transaction, so a
	// unique violation leaves the outer transaction usable for a retry.
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(profileM).Error
	})
	if err != nil {
		if isUniqueViolationOn(err, constraintProfilesUsername) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isUniqueViolationOn(err, constraintProfilesUsername) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count profiles")
	}

	return count, nil
}

func toProfileDomains(data []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(data))
	for _, profileM := range data {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:           data.ID,
		UserID:       data.UserID,
		Username:     data.Username,
		DisplayName:  data.DisplayName,
		Bio:          data.Bio,
		JobTitle:     data.JobTitle,
		Company:      data.Company,
		Location:     data.Location,
		Website:      data.Website,
		Avatar:       data.Avatar,
		Theme:        data.Theme,
		IsPublic:     data.IsPublic,
		SocialLinks:  data.SocialLinks,
		ContactInfo:  data.ContactInfo,
		CustomFields: data.CustomFields,
		Settings:     data.Settings,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Username:     data.Username,
		DisplayName:  data.DisplayName,
		Bio:          data.Bio,
		JobTitle:     data.JobTitle,
		Company:      data.Company,
		Location:     data.Location,
		Website:      data.Website,
		Avatar:       data.Avatar,
		Theme:        data.Theme,
		IsPublic:     data.IsPublic,
		SocialLinks:  data.SocialLinks,
		ContactInfo:  data.ContactInfo,
		CustomFields: data.CustomFields,
		Settings:     data.Settings,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
