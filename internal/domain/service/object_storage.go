package service

import "context"

// StoredObject is an object read back from storage.
type StoredObject struct {
	ContentType string
	Data        []byte
}

// ObjectStorage stores uploaded files and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Get returns ErrFileNotFound when key does not exist.
	Get(ctx context.Context, key string) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
