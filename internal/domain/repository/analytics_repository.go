package repository

import (
	"context"

	"taponn/internal/domain/entity"
)

// AnalyticsRepository appends analytics events. There is no update or delete path.
type AnalyticsRepository interface {
	Create(ctx context.Context, event *entity.AnalyticsEvent) error
}
