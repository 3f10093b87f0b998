package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"taponn/internal/domain/entity"
	mockUsecase "taponn/internal/mocks/usecase"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsTestEcho(t *testing.T, actor *entity.User) (*echo.Echo, *mockUsecase.MockAnalyticsUsecase) {
	uc := mockUsecase.NewMockAnalyticsUsecase(t)
	h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/analytics/record", h.RecordEvent, withActor(actor))

	return e, uc
}

func TestAnalyticsHandler_RecordEvent(t *testing.T) {
	t.Run("anonymous event uses transport client details", func(t *testing.T) {
		e, uc := newAnalyticsTestEcho(t, nil)
		profileID := uuid.New()
		eventID := uuid.New()

		var got *usecase.RecordEventInput
		uc.EXPECT().RecordEvent(mock.Anything, (*entity.User)(nil), mock.Anything).
			Run(func(_ context.Context, _ *entity.User, input *usecase.RecordEventInput) { got = input }).
			Return(eventID, nil)

		req := httptestRequest(http.MethodPost, "/api/analytics/record", `{
			"eventType": "profile_view",
			"eventAction": "view",
			"profileId": "`+profileID.String()+`",
			"metadata": {"ipAddress": "10.0.0.1", "platform": "web"},
			"session": {"id": "s-1"}
		}`)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderXRealIP, "198.51.100.4")
		req.Header.Set("User-Agent", "test-agent")
		rec := serve(e, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NotNil(t, got)
		assert.Equal(t, "profile_view", got.EventType)
		require.NotNil(t, got.ProfileID)
		assert.Equal(t, profileID, *got.ProfileID)
		assert.Nil(t, got.QRCodeID)
		assert.Equal(t, "198.51.100.4", got.IPAddress)
		assert.Equal(t, "test-agent", got.UserAgent)
		assert.Equal(t, "web", got.Metadata.Platform)
		assert.Equal(t, "s-1", got.Session["id"])

		out := decodeData[RecordEventResponse](t, rec)
		assert.True(t, out.Success)
		assert.Equal(t, eventID, out.ID)
	})

	t.Run("authenticated caller is passed through", func(t *testing.T) {
		actor := newUser(entity.RoleUser)
		e, uc := newAnalyticsTestEcho(t, actor)
		uc.EXPECT().RecordEvent(mock.Anything, actor, mock.Anything).Return(uuid.New(), nil)

		rec := doJSON(e, http.MethodPost, "/api/analytics/record", `{"eventType":"click"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("event type is required", func(t *testing.T) {
		e, _ := newAnalyticsTestEcho(t, nil)

		rec := doJSON(e, http.MethodPost, "/api/analytics/record", `{"eventAction":"view"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("malformed qr code id", func(t *testing.T) {
		e, _ := newAnalyticsTestEcho(t, nil)

		rec := doJSON(e, http.MethodPost, "/api/analytics/record", `{"eventType":"click","qrCodeId":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "qrCodeId"))
	})
}
