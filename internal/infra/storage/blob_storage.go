// Package storage stores uploaded images in a gocloud.dev bucket. The bucket URL
// scheme selects the backend: file:// for local disks, gs:// for Cloud Storage and
// s3:// for S3-compatible stores.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"taponn/config"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultPublicPrefix = "/uploads"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for ObjectStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. When storage is not configured, uploads are rejected.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Object storage not configured, uploads are disabled")

		return &disabledStorage{}, nil
	}

	storage, err := Open(params.Ctx, cfg.BucketURL, cfg.PublicBaseURL, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing object storage")

			return storage.Close()
		},
	})

	return storage, nil
}

// Open opens bucketURL and returns an ObjectStorage that builds links under publicBaseURL.
func Open(ctx context.Context, bucketURL, publicBaseURL string, logger *slog.Logger) (service.ObjectStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", redactBucketURL(bucketURL))
	}

	logger.Info("Object storage opened", slog.String("bucket", redactBucketURL(bucketURL)))

	base := strings.TrimSuffix(publicBaseURL, "/")
	if base == "" {
		base = defaultPublicPrefix
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: base,
		logger:        logger,
	}, nil
}

// Put writes data under key and returns its public URL.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	s.logger.Debug("Object stored",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int("size", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Get reads the object stored under key.
func (s *blobStorage) Get(ctx context.Context, key string) (*service.StoredObject, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	return &service.StoredObject{ContentType: r.ContentType(), Data: data}, nil
}

// Delete removes key. A missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && !isNotFound(err) {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid-url"
	}
	u.RawQuery = ""
	u.User = nil

	return u.String()
}

// disabledStorage rejects every write.
type disabledStorage struct{}

var errStorageDisabled = errors.New("object storage is not configured")

func (disabledStorage) Put(context.Context, string, string, []byte) (string, error) {
	return "", errStorageDisabled
}

func (disabledStorage) Get(context.Context, string) (*service.StoredObject, error) {
	return nil, domainerrors.ErrFileNotFound
}

func (disabledStorage) Delete(context.Context, string) error {
	return errStorageDisabled
}

func (disabledStorage) Close() error {
	return nil
}
