package handler

import (
	"context"
	"net/http"
	"testing"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	mockUsecase "taponn/internal/mocks/usecase"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQRCodeTestEcho(t *testing.T, actor *entity.User) (*echo.Echo, *mockUsecase.MockQRCodeUsecase) {
	uc := mockUsecase.NewMockQRCodeUsecase(t)
	h := NewQRCodeHandler(QRCodeHandlerParams{QRCodeUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/qr/scan/:id", h.ScanQRCode)
	g := e.Group("/api/qr", withActor(actor))
	g.POST("/", h.CreateQRCode)
	g.GET("/:id", h.GetQRCode)
	g.PUT("/:id", h.UpdateQRCode)
	g.DELETE("/:id", h.DeleteQRCode)
	g.GET("/:id/download", h.DownloadQRCode)
	g.GET("/:id/analytics", h.GetQRCodeAnalytics)

	return e, uc
}

func TestQRCodeHandler_CreateQRCode(t *testing.T) {
	actor := newUser(entity.RoleUser)
	profileID := uuid.New()

	t.Run("maps request to input", func(t *testing.T) {
		e, uc := newQRCodeTestEcho(t, actor)

		var got *usecase.CreateQRCodeInput
		uc.EXPECT().CreateQRCode(mock.Anything, actor, mock.Anything).
			Run(func(_ context.Context, _ *entity.User, input *usecase.CreateQRCodeInput) { got = input }).
			Return(&entity.QRCode{ID: uuid.New(), ProfileID: profileID, Type: entity.QRTypeURL, Data: "https://example.com", IsActive: true}, nil)

		rec := doJSON(e, http.MethodPost, "/api/qr/", `{
			"name": "Site",
			"type": "url",
			"profile": "`+profileID.String()+`",
			"data": {"content": {"url": "https://example.com"}},
			"settings": {"size": 300, "foregroundColor": "#112233", "errorCorrectionLevel": "H"}
		}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NotNil(t, got)
		assert.Equal(t, "Site", got.Name)
		assert.Equal(t, entity.QRTypeURL, got.Type)
		assert.Equal(t, profileID, got.ProfileID)
		assert.Equal(t, "https://example.com", got.Content["url"])
		require.NotNil(t, got.Settings)
		require.NotNil(t, got.Settings.Size)
		assert.Equal(t, 300, *got.Settings.Size)
		require.NotNil(t, got.Settings.ErrorCorrectionLevel)
		assert.Equal(t, "H", *got.Settings.ErrorCorrectionLevel)
		assert.Nil(t, got.Settings.Margin)
		assert.False(t, got.Settings.ClearMaxScans)

		out := decodeData[QRCodeResponse](t, rec)
		assert.Equal(t, "https://example.com", out.QRData)
		assert.Equal(t, profileID, out.Profile)
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		e, _ := newQRCodeTestEcho(t, actor)

		rec := doJSON(e, http.MethodPost, "/api/qr/", `{
			"name": "Site",
			"profile": "`+profileID.String()+`",
			"settings": {"foregroundColor": "red", "errorCorrectionLevel": "Z"}
		}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("requires profile", func(t *testing.T) {
		e, _ := newQRCodeTestEcho(t, actor)

		rec := doJSON(e, http.MethodPost, "/api/qr/", `{"name": "Site"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestQRCodeHandler_UpdateQRCode_ContentFromData(t *testing.T) {
	actor := newUser(entity.RoleUser)
	e, uc := newQRCodeTestEcho(t, actor)
	id := uuid.New()

	var got entity.QRCodePatch
	uc.EXPECT().UpdateQRCode(mock.Anything, actor, id, mock.Anything).
		Run(func(_ context.Context, _ *entity.User, _ uuid.UUID, patch entity.QRCodePatch) { got = patch }).
		Return(&entity.QRCode{ID: id}, nil)

	rec := doJSON(e, http.MethodPut, "/api/qr/"+id.String(), `{"isActive":false,"data":{"content":{"phone":"+15550100"}}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, got.IsActive)
	assert.False(t, *got.IsActive)
	assert.Equal(t, "+15550100", got.Content["phone"])
	assert.Nil(t, got.Name)
	assert.Nil(t, got.Settings)
}

func TestQRCodeHandler_UpdateQRCode_SettingsPresence(t *testing.T) {
	actor := newUser(entity.RoleUser)
	e, uc := newQRCodeTestEcho(t, actor)
	id := uuid.New()

	var got entity.QRCodePatch
	uc.EXPECT().UpdateQRCode(mock.Anything, actor, id, mock.Anything).
		Run(func(_ context.Context, _ *entity.User, _ uuid.UUID, patch entity.QRCodePatch) { got = patch }).
		Return(&entity.QRCode{ID: id}, nil)

	rec := doJSON(e, http.MethodPut, "/api/qr/"+id.String(), `{"settings":{"margin":0,"expiresAt":null,"maxScans":null}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, got.Settings)
	require.NotNil(t, got.Settings.Margin)
	assert.Equal(t, 0, *got.Settings.Margin)
	assert.Nil(t, got.Settings.Size)
	assert.True(t, got.Settings.ClearExpiresAt)
	assert.True(t, got.Settings.ClearMaxScans)
	assert.Nil(t, got.Settings.MaxScans)
}

func TestQRCodeHandler_UpdateQRCode_SetsScanLimit(t *testing.T) {
	actor := newUser(entity.RoleUser)
	e, uc := newQRCodeTestEcho(t, actor)
	id := uuid.New()

	var got entity.QRCodePatch
	uc.EXPECT().UpdateQRCode(mock.Anything, actor, id, mock.Anything).
		Run(func(_ context.Context, _ *entity.User, _ uuid.UUID, patch entity.QRCodePatch) { got = patch }).
		Return(&entity.QRCode{ID: id}, nil)

	rec := doJSON(e, http.MethodPut, "/api/qr/"+id.String(), `{"settings":{"maxScans":25,"expiresAt":"2030-01-02T03:04:05Z"}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, got.Settings)
	require.NotNil(t, got.Settings.MaxScans)
	assert.Equal(t, 25, *got.Settings.MaxScans)
	require.NotNil(t, got.Settings.ExpiresAt)
	assert.Equal(t, 2030, got.Settings.ExpiresAt.Year())
	assert.False(t, got.Settings.ClearExpiresAt)
	assert.False(t, got.Settings.ClearMaxScans)
	assert.Nil(t, got.Settings.Margin)
}

func TestQRCodeHandler_DeleteQRCode(t *testing.T) {
	actor := newUser(entity.RoleUser)
	id := uuid.New()

	t.Run("no content", func(t *testing.T) {
		e, uc := newQRCodeTestEcho(t, actor)
		uc.EXPECT().DeleteQRCode(mock.Anything, actor, id).Return(nil)

		rec := doJSON(e, http.MethodDelete, "/api/qr/"+id.String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		e, uc := newQRCodeTestEcho(t, actor)
		uc.EXPECT().DeleteQRCode(mock.Anything, actor, id).Return(domainerrors.ErrForbidden)

		rec := doJSON(e, http.MethodDelete, "/api/qr/"+id.String(), "")

		requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func TestQRCodeHandler_DownloadQRCode(t *testing.T) {
	actor := newUser(entity.RoleUser)
	id := uuid.New()

	t.Run("png attachment", func(t *testing.T) {
		e, uc := newQRCodeTestEcho(t, actor)
		png := []byte{0x89, 'P', 'N', 'G'}
		uc.EXPECT().RenderQRCodePNG(mock.Anything, actor, id).Return(png, nil)

		rec := doJSON(e, http.MethodGet, "/api/qr/"+id.String()+"/download", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "qr-"+id.String()+".png")
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("data url", func(t *testing.T) {
		e, uc := newQRCodeTestEcho(t, actor)
		uc.EXPECT().RenderQRCodeDataURL(mock.Anything, actor, id).Return("data:image/png;base64,AAAA", nil)

		rec := doJSON(e, http.MethodGet, "/api/qr/"+id.String()+"/download?format=dataurl", "")

		require.Equal(t, http.StatusOK, rec.Code)
		out := decodeData[map[string]string](t, rec)
		assert.Equal(t, "data:image/png;base64,AAAA", out["qrImage"])
	})
}

func TestQRCodeHandler_ScanQRCode(t *testing.T) {
	id := uuid.New()

	t.Run("records client details", func(t *testing.T) {
		e, uc := newQRCodeTestEcho(t, nil)

		var got *usecase.ScanInput
		uc.EXPECT().ScanQRCode(mock.Anything, id, mock.Anything).
			Run(func(_ context.Context, _ uuid.UUID, input *usecase.ScanInput) { got = input }).
			Return(&usecase.ScanOutput{
				QRCode:      &entity.QRCode{ID: id, ScanCount: 1, IsActive: true},
				RedirectURL: "https://taponn.app/profile/ada",
			}, nil)

		req := httptestRequest(http.MethodGet, "/api/qr/scan/"+id.String(), "")
		req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
		req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148")
		req.Header.Set("Referer", "https://instagram.com")
		rec := serve(e, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.NotNil(t, got)
		assert.Equal(t, "203.0.113.7", got.IPAddress)
		assert.Equal(t, "https://instagram.com", got.Referrer)
		assert.Equal(t, "mobile", got.Device)

		out := decodeData[ScanResponse](t, rec)
		assert.Equal(t, "https://taponn.app/profile/ada", out.RedirectURL)
		assert.Equal(t, 1, out.QRCode.ScanCount)
	})

	t.Run("inactive code", func(t *testing.T) {
		e, uc := newQRCodeTestEcho(t, nil)
		uc.EXPECT().ScanQRCode(mock.Anything, id, mock.Anything).Return(nil, domainerrors.ErrQRCodeInactive)

		rec := doJSON(e, http.MethodGet, "/api/qr/scan/"+id.String(), "")

		requireErrorCode(t, rec, http.StatusBadRequest, "QR_CODE_INACTIVE")
	})
}

func TestQRCodeHandler_GetQRCodeAnalytics(t *testing.T) {
	actor := newUser(entity.RoleUser)
	e, uc := newQRCodeTestEcho(t, actor)
	id := uuid.New()
	uc.EXPECT().GetQRCodeAnalytics(mock.Anything, actor, id).Return(&usecase.QRCodeAnalyticsOutput{
		QRCodeID:    id,
		ScanCount:   3,
		TotalScans:  3,
		UniqueScans: 2,
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/qr/"+id.String()+"/analytics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[QRCodeAnalyticsResponse](t, rec)
	assert.Equal(t, 2, out.UniqueScans)
	assert.NotNil(t, out.RecentScans)
}

func TestDeviceClass(t *testing.T) {
	assert.Equal(t, "", deviceClass(""))
	assert.Equal(t, "tablet", deviceClass("Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)"))
	assert.Equal(t, "mobile", deviceClass("Mozilla/5.0 (Linux; Android 14; Pixel 8)"))
	assert.Equal(t, "desktop", deviceClass("Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0"))
}
