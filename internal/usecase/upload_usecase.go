package usecase

import (
	"context"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadFile is an uploaded file read into memory.
type UploadFile struct {
	Filename string
	Data     []byte
}

// UploadOutput describes the stored object.
type UploadOutput struct {
	URL         string
	Key         string
	ContentType string
	Size        int
}

// StoredFile is a previously uploaded file.
type StoredFile struct {
	ContentType string
	Data        []byte
}

// UploadUsecase stores images and attaches them to profiles and QR codes.
type UploadUsecase interface {
	// UploadProfileImage stores an avatar. When profileID is not nil the profile's avatar is replaced.
	UploadProfileImage(ctx context.Context, actor *entity.User, profileID uuid.UUID, file *UploadFile) (*UploadOutput, error)

	// UploadQRLogo stores a logo. When qrID is not nil the code's logo is replaced.
	UploadQRLogo(ctx context.Context, actor *entity.User, qrID uuid.UUID, file *UploadFile) (*UploadOutput, error)

	// OpenFile reads an uploaded file by its storage key for public serving.
	OpenFile(ctx context.Context, key string) (*StoredFile, error)
}
