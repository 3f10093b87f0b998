package usecase

import (
	"context"
	"time"

	"taponn/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateQRCodeInput defines the data required to create a QR code.
type CreateQRCodeInput struct {
	Name      string
	Type      entity.QRType
	ProfileID uuid.UUID

	// Content holds the type-specific fields, e.g. "url" or "phone".
	Content  map[string]any
	Settings *entity.QRSettingsPatch
}

// ScanInput describes the client that scanned a code.
type ScanInput struct {
	IPAddress string
	UserAgent string
	Referrer  string
	Device    string
}

// ScanOutput is returned to the scanning client.
type ScanOutput struct {
	QRCode      *entity.QRCode
	RedirectURL string
}

// QRCodeAnalyticsOutput summarises scan activity for one code.
type QRCodeAnalyticsOutput struct {
	QRCodeID      uuid.UUID
	ScanCount     int
	TotalScans    int
	UniqueScans   int
	LastScannedAt *time.Time
	RecentScans   []entity.ScanRecord
}

// QRCodeUsecase defines QR code operations. Every method except ScanQRCode is
// restricted to the code owner and administrators.
type QRCodeUsecase interface {
	CreateQRCode(ctx context.Context, actor *entity.User, input *CreateQRCodeInput) (*entity.QRCode, error)
	ListQRCodes(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.QRCode, error)
	GetQRCode(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.QRCode, error)
	UpdateQRCode(ctx context.Context, actor *entity.User, id uuid.UUID, patch entity.QRCodePatch) (*entity.QRCode, error)
	DeleteQRCode(ctx context.Context, actor *entity.User, id uuid.UUID) error
	ToggleQRCodeStatus(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.QRCode, error)

	// RegenerateQRCode recomputes the payload from the current profile and resets the scan counters.
	RegenerateQRCode(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.QRCode, error)

	GetQRCodeAnalytics(ctx context.Context, actor *entity.User, id uuid.UUID) (*QRCodeAnalyticsOutput, error)
	RenderQRCodePNG(ctx context.Context, actor *entity.User, id uuid.UUID) ([]byte, error)
	RenderQRCodeDataURL(ctx context.Context, actor *entity.User, id uuid.UUID) (string, error)

	// ScanQRCode is the public scan path. It records the scan and returns the payload to redirect to.
	ScanQRCode(ctx context.Context, id uuid.UUID, input *ScanInput) (*ScanOutput, error)
}
