package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
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

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func newUploadTestEcho(t *testing.T, actor *entity.User) (*echo.Echo, *mockUsecase.MockUploadUsecase) {
	uc := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/upload", withActor(actor))
	g.POST("/profile-image", h.UploadProfileImage)
	g.POST("/qr-logo", h.UploadQRLogo)

	return e, uc
}

func multipartRequest(t *testing.T, target, fileField, filename string, data []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestUploadHandler_UploadProfileImage(t *testing.T) {
	actor := newUser(entity.RoleUser)

	t.Run("stores image for profile", func(t *testing.T) {
		e, uc := newUploadTestEcho(t, actor)
		profileID := uuid.New()

		var got *usecase.UploadFile
		uc.EXPECT().UploadProfileImage(mock.Anything, actor, profileID, mock.Anything).
			Run(func(_ context.Context, _ *entity.User, _ uuid.UUID, file *usecase.UploadFile) { got = file }).
			Return(&usecase.UploadOutput{
				URL:         "https://cdn.taponn.app/profile-images/a.png",
				Key:         "profile-images/a.png",
				ContentType: "image/png",
				Size:        len(pngHeader),
			}, nil)

		req := multipartRequest(t, "/api/upload/profile-image", "image", "avatar.png", pngHeader,
			map[string]string{"profileId": profileID.String()})
		rec := serve(e, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NotNil(t, got)
		assert.Equal(t, "avatar.png", got.Filename)
		assert.Equal(t, pngHeader, got.Data)

		out := decodeData[UploadResponse](t, rec)
		assert.Equal(t, "image/png", out.ContentType)
		assert.Equal(t, "profile-images/a.png", out.Key)
	})

	t.Run("profile id is optional", func(t *testing.T) {
		e, uc := newUploadTestEcho(t, actor)
		uc.EXPECT().UploadProfileImage(mock.Anything, actor, uuid.Nil, mock.Anything).
			Return(&usecase.UploadOutput{Key: "profile-images/b.png"}, nil)

		rec := serve(e, multipartRequest(t, "/api/upload/profile-image", "image", "b.png", pngHeader, nil))

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		e, _ := newUploadTestEcho(t, actor)

		rec := serve(e, multipartRequest(t, "/api/upload/profile-image", "", "", nil, map[string]string{"profileId": uuid.NewString()}))

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("malformed profile id", func(t *testing.T) {
		e, _ := newUploadTestEcho(t, actor)

		rec := serve(e, multipartRequest(t, "/api/upload/profile-image", "image", "a.png", pngHeader, map[string]string{"profileId": "abc"}))

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
	})
}

func TestUploadHandler_UploadQRLogo(t *testing.T) {
	actor := newUser(entity.RoleUser)
	qrID := uuid.New()

	t.Run("rejected type", func(t *testing.T) {
		e, uc := newUploadTestEcho(t, actor)
		uc.EXPECT().UploadQRLogo(mock.Anything, actor, qrID, mock.Anything).Return(nil, domainerrors.ErrUploadType)

		rec := serve(e, multipartRequest(t, "/api/upload/qr-logo", "logo", "logo.txt", []byte("hello"),
			map[string]string{"qrId": qrID.String()}))

		requireErrorCode(t, rec, http.StatusBadRequest, "UPLOAD_TYPE_UNSUPPORTED")
	})

	t.Run("too large", func(t *testing.T) {
		e, uc := newUploadTestEcho(t, actor)
		uc.EXPECT().UploadQRLogo(mock.Anything, actor, qrID, mock.Anything).Return(nil, domainerrors.ErrUploadTooLarge)

		rec := serve(e, multipartRequest(t, "/api/upload/qr-logo", "logo", "logo.png", pngHeader,
			map[string]string{"qrId": qrID.String()}))

		requireErrorCode(t, rec, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE")
	})
}

func TestUploadHandler_ServeFile(t *testing.T) {
	newServeEcho := func(t *testing.T) (*echo.Echo, *mockUsecase.MockUploadUsecase) {
		uc := mockUsecase.NewMockUploadUsecase(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: uc, Logger: newDiscardLogger()})
		e := newTestEcho()
		e.GET("/uploads/*", h.ServeFile)

		return e, uc
	}

	t.Run("streams file", func(t *testing.T) {
		e, uc := newServeEcho(t)
		uc.EXPECT().OpenFile(mock.Anything, "qr-logos/u1/a.png").
			Return(&usecase.StoredFile{ContentType: "image/png", Data: pngHeader}, nil)

		rec := doJSON(e, http.MethodGet, "/uploads/qr-logos/u1/a.png", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
		assert.Equal(t, pngHeader, rec.Body.Bytes())
	})

	t.Run("missing file", func(t *testing.T) {
		e, uc := newServeEcho(t)
		uc.EXPECT().OpenFile(mock.Anything, "qr-logos/u1/gone.png").Return(nil, domainerrors.ErrFileNotFound)

		rec := doJSON(e, http.MethodGet, "/uploads/qr-logos/u1/gone.png", "")

		requireErrorCode(t, rec, http.StatusNotFound, "FILE_NOT_FOUND")
	})
}
