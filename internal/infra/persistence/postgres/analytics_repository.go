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

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a GORM-backed analytics event store.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (repo *analyticsRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	if event.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate analytics event id")
		}
		event.ID = id
	}

	eventM := fromAnalyticsEventDomain(event)
	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record analytics event")
	}

	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

func fromAnalyticsEventDomain(data *entity.AnalyticsEvent) *model.AnalyticsEventModel {
	return &model.AnalyticsEventModel{
		ID:            data.ID,
		UserID:        data.UserID,
		ProfileID:     data.ProfileID,
		QRCodeID:      data.QRCodeID,
		EventType:     data.EventType,
		EventCategory: data.EventCategory,
		EventAction:   data.EventAction,
		Metadata:      data.Metadata,
		Session:       data.Session,
		UserJourney:   data.UserJourney,
		Performance:   data.Performance,
		Conversion:    data.Conversion,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
