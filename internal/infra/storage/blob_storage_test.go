package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"taponn/config"
	domainerrors "taponn/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobStorage_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(ctx, "file://"+filepath.ToSlash(dir), "https://cdn.example.com/", discardLogger())
	require.NoError(t, err)
	defer store.Close()

	url, err := store.Put(ctx, "profile-images/p1/avatar.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profile-images/p1/avatar.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "profile-images", "p1", "avatar.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), written)

	obj, err := store.Get(ctx, "profile-images/p1/avatar.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), obj.Data)
	assert.Equal(t, "image/png", obj.ContentType)

	require.NoError(t, store.Delete(ctx, "profile-images/p1/avatar.png"))
	_, err = store.Get(ctx, "profile-images/p1/avatar.png")
	assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)

	_, err = os.Stat(filepath.Join(dir, "profile-images", "p1", "avatar.png"))
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is fine.
	assert.NoError(t, store.Delete(ctx, "profile-images/p1/avatar.png"))
}

func TestBlobStorage_DefaultPublicPrefix(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, "file://"+filepath.ToSlash(t.TempDir()), "", discardLogger())
	require.NoError(t, err)
	defer store.Close()

	url, err := store.Put(ctx, "qr-logos/logo.webp", "image/webp", []byte("webp"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/qr-logos/logo.webp", url)
}

func TestNew_UnconfiguredRejectsWrites(t *testing.T) {
	store, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "k", "image/png", []byte("x"))
	assert.ErrorIs(t, err, errStorageDisabled)

	_, err = store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://bucket", redactBucketURL("s3://bucket?region=us-east-1&secret=abc"))
	assert.Equal(t, "file:///tmp/uploads", redactBucketURL("file:///tmp/uploads?create_dir=true"))
}
