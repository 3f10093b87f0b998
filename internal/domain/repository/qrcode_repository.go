package repository

import (
	"context"
	"errors"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrQRCodeNotFound = errors.New("qr code not found")

// QRCodeRepository persists QR codes.
type QRCodeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error)

	// FindByIDForUpdate loads the code and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.QRCode, error)

	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.QRCode, error)
	Create(ctx context.Context, qr *entity.QRCode) error
	Update(ctx context.Context, qr *entity.QRCode) error
	Delete(ctx context.Context, id uuid.UUID) error
}
