package impl

import (
	"context"
	"testing"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/service"
	mockSvc "taponn/internal/mocks/service"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func createTestUploadService(t *testing.T) (*uploadService, *repoFixtures, *mockSvc.MockObjectStorage) {
	repos := newRepoFixtures(t)
	storage := mockSvc.NewMockObjectStorage(t)

	svc := NewUploadService(UploadServiceParams{
		TxManager: passthroughTx(t, repos),
		Storage:   storage,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*uploadService)
	svc.newKey = func() string { return "fixed" }

	return svc, repos, storage
}

func TestUploadService_UploadProfileImage_SetsAvatar(t *testing.T) {
	svc, repos, storage := createTestUploadService(t)
	ctx := context.Background()
	actor := entity.NewUser("Jane", "jane@example.com", "hash")
	actor.ID = uuid.New()
	profile := newOwnedProfile(actor.ID)
	key := "profile-images/" + actor.ID.String() + "/fixed.png"

	storage.EXPECT().Put(ctx, key, "image/png", pngHeader).Return("/uploads/"+key, nil)
	repos.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	repos.profiles.EXPECT().Update(ctx, profile).Return(nil)

	out, err := svc.UploadProfileImage(ctx, actor, profile.ID, &usecase.UploadFile{Filename: "me.png", Data: pngHeader})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/"+key, out.URL)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, "/uploads/"+key, profile.Avatar)
}

func TestUploadService_UploadProfileImage_RemovesObjectWhenAttachFails(t *testing.T) {
	svc, repos, storage := createTestUploadService(t)
	ctx := context.Background()
	actor := entity.NewUser("Jane", "jane@example.com", "hash")
	actor.ID = uuid.New()
	profile := newOwnedProfile(uuid.New())

	storage.EXPECT().Put(ctx, mock.Anything, "image/png", pngHeader).Return("/uploads/x.png", nil)
	repos.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	storage.EXPECT().Delete(ctx, mock.Anything).Return(errors.New("bucket gone"))

	_, err := svc.UploadProfileImage(ctx, actor, profile.ID, &usecase.UploadFile{Data: pngHeader})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUploadService_UploadQRLogo_WithoutTarget(t *testing.T) {
	svc, _, storage := createTestUploadService(t)
	ctx := context.Background()
	actor := entity.NewUser("Jane", "jane@example.com", "hash")
	actor.ID = uuid.New()

	storage.EXPECT().Put(ctx, "qr-logos/"+actor.ID.String()+"/fixed.png", "image/png", pngHeader).Return("https://cdn.example/logo.png", nil)

	out, err := svc.UploadQRLogo(ctx, actor, uuid.Nil, &usecase.UploadFile{Data: pngHeader})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/logo.png", out.URL)
}

func TestUploadService_Rejections(t *testing.T) {
	ctx := context.Background()
	actor := entity.NewUser("Jane", "jane@example.com", "hash")
	actor.ID = uuid.New()

	t.Run("missing permission", func(t *testing.T) {
		svc, _, _ := createTestUploadService(t)
		limited := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

		_, err := svc.UploadProfileImage(ctx, limited, uuid.Nil, &usecase.UploadFile{Data: pngHeader})

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("too large", func(t *testing.T) {
		svc, _, _ := createTestUploadService(t)
		svc.maxBytes = 8

		_, err := svc.UploadProfileImage(ctx, actor, uuid.Nil, &usecase.UploadFile{Data: pngHeader})

		require.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)
	})

	t.Run("not an image", func(t *testing.T) {
		svc, _, _ := createTestUploadService(t)

		_, err := svc.UploadProfileImage(ctx, actor, uuid.Nil, &usecase.UploadFile{Data: []byte("%PDF-1.7 fake document")})

		require.ErrorIs(t, err, domainerrors.ErrUploadType)
	})

	t.Run("empty file", func(t *testing.T) {
		svc, _, _ := createTestUploadService(t)

		_, err := svc.UploadProfileImage(ctx, actor, uuid.Nil, &usecase.UploadFile{})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUploadService_OpenFile(t *testing.T) {
	ctx := context.Background()

	t.Run("reads stored object", func(t *testing.T) {
		svc, _, storage := createTestUploadService(t)
		storage.EXPECT().Get(ctx, "qr-logos/u1/a.png").
			Return(&service.StoredObject{ContentType: "image/png", Data: pngHeader}, nil)

		file, err := svc.OpenFile(ctx, "qr-logos/u1/a.png")

		require.NoError(t, err)
		assert.Equal(t, "image/png", file.ContentType)
		assert.Equal(t, pngHeader, file.Data)
	})

	t.Run("missing object", func(t *testing.T) {
		svc, _, storage := createTestUploadService(t)
		storage.EXPECT().Get(ctx, "profile-images/u1/gone.png").Return(nil, domainerrors.ErrFileNotFound)

		_, err := svc.OpenFile(ctx, "profile-images/u1/gone.png")

		require.ErrorIs(t, err, domainerrors.ErrFileNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, _, storage := createTestUploadService(t)
		storage.EXPECT().Get(ctx, "profile-images/u1/a.png").Return(nil, errors.New("bucket gone"))

		_, err := svc.OpenFile(ctx, "profile-images/u1/a.png")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrFileNotFound)
	})

	for _, key := range []string{"", "secrets/key.pem", "profile-images/../config.yaml", "/profile-images/a.png"} {
		t.Run("rejects "+key, func(t *testing.T) {
			svc, _, _ := createTestUploadService(t)

			_, err := svc.OpenFile(ctx, key)

			require.ErrorIs(t, err, domainerrors.ErrFileNotFound)
		})
	}
}
