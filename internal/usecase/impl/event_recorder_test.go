package impl

import (
	"context"
	"testing"

	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	"taponn/internal/domain/service"
	mockRepo "taponn/internal/mocks/repository"
	mockSvc "taponn/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventRecorder_RecordDefaultsCategoryAndID(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockAnalyticsRepository(t)
	recorder := newEventRecorder(nil, newDiscardLogger())

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).Return(nil)

	event := &entity.AnalyticsEvent{EventType: "page_view"}
	require.NoError(t, recorder.record(ctx, repo, event))

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, entity.DefaultEventCategory, event.EventCategory)
}

func TestEventRecorder_PublishCarriesRequestIDAndSwallowsErrors(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	publisher := mockSvc.NewMockEventPublisher(t)
	recorder := newEventRecorder(publisher, newDiscardLogger())

	qrID := uuid.New()
	event := &entity.AnalyticsEvent{
		ID:        uuid.New(),
		QRCodeID:  &qrID,
		EventType: entity.EventTypeQRScan,
		Metadata:  entity.EventMetadata{IPAddress: "10.0.0.1"},
	}

	publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Run(func(_ context.Context, msg *service.AnalyticsEventMessage) {
			assert.Equal(t, "req-123", msg.RequestID)
			assert.Equal(t, qrID.String(), msg.QRCodeID)
			assert.Empty(t, msg.UserID)
			assert.Equal(t, "10.0.0.1", msg.Metadata["ipAddress"])
		}).
		Return(errors.New("broker unavailable"))

	recorder.publish(ctx, event)
}

func TestEventRecorder_PublishWithoutPublisherIsNoop(t *testing.T) {
	recorder := newEventRecorder(nil, newDiscardLogger())

	assert.NotPanics(t, func() {
		recorder.publish(context.Background(), &entity.AnalyticsEvent{EventType: "x"})
	})
}
