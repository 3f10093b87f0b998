package entity

import (
	"time"

	"github.com/google/uuid"
)

// QRType tags how a QR code payload is derived.
type QRType string

const (
	QRTypeProfile   QRType = "profile"
	QRTypeContact   QRType = "contact"
	QRTypeVCard     QRType = "vcard"
	QRTypeWhatsApp  QRType = "whatsapp"
	QRTypeEmail     QRType = "email"
	QRTypePhone     QRType = "phone"
	QRTypeLinkedIn  QRType = "linkedin"
	QRTypeInstagram QRType = "instagram"
	QRTypeFacebook  QRType = "facebook"
	QRTypeTwitter   QRType = "twitter"
	QRTypeWebsite   QRType = "website"
	QRTypeURL       QRType = "url"
	QRTypeWiFi      QRType = "wifi"
	QRTypeText      QRType = "text"
	QRTypeCustom    QRType = "custom"
)

// IsValid checks if the type is a known value.
func (t QRType) IsValid() bool {
	switch t {
	case QRTypeProfile, QRTypeContact, QRTypeVCard, QRTypeWhatsApp, QRTypeEmail, QRTypePhone,
		QRTypeLinkedIn, QRTypeInstagram, QRTypeFacebook, QRTypeTwitter, QRTypeWebsite, QRTypeURL,
		QRTypeWiFi, QRTypeText, QRTypeCustom:
		return true
	default:
		return false
	}
}

// QRCode is a generated code linked to a profile.
type QRCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProfileID uuid.UUID
	Name      string
	Type      QRType

	// Content is the type-specific input the payload was derived from.
	Content map[string]any
	// Data is the encoded payload string.
	Data string

	QRImage   string
	Logo      string
	ScanCount int
	IsActive  bool

	Settings  QRSettings
	Analytics QRAnalytics

	CreatedAt time.Time
	UpdatedAt time.Time
}

type QRSettings struct {
	Size                 int        `json:"size"`
	ForegroundColor      string     `json:"foregroundColor"`
	BackgroundColor      string     `json:"backgroundColor"`
	ErrorCorrectionLevel string     `json:"errorCorrectionLevel"`
	Margin               int        `json:"margin"`
	ExpiresAt            *time.Time `json:"expiresAt,omitempty"`
	MaxScans             *int       `json:"maxScans,omitempty"`
}

// DefaultQRSettings returns the render settings applied to new codes.
func DefaultQRSettings() QRSettings {
	return QRSettings{
		Size:                 200,
		ForegroundColor:      "#000000",
		BackgroundColor:      "#FFFFFF",
		ErrorCorrectionLevel: "M",
		Margin:               4,
	}
}

type QRAnalytics struct {
	TotalScans    int          `json:"totalScans"`
	UniqueScans   int          `json:"uniqueScans"`
	LastScannedAt *time.Time   `json:"lastScannedAt,omitempty"`
	ScanHistory   []ScanRecord `json:"scanHistory"`
}

type ScanRecord struct {
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Location  string    `json:"location,omitempty"`
	Device    string    `json:"device,omitempty"`
}

// NewQRCode builds an active code with default settings.
func NewQRCode(userID, profileID uuid.UUID, name string, qrType QRType) *QRCode {
	return &QRCode{
		UserID:    userID,
		ProfileID: profileID,
		Name:      name,
		Type:      qrType,
		IsActive:  true,
		Settings:  DefaultQRSettings(),
	}
}

// ScanBlockReason reports why the code cannot be scanned at now, or QRScanAllowed.
func (q *QRCode) ScanBlockReason(now time.Time) QRScanBlock {
	switch {
	case !q.IsActive:
		return QRScanInactive
	case q.Settings.ExpiresAt != nil && !q.Settings.ExpiresAt.After(now):
		return QRScanExpired
	case q.Settings.MaxScans != nil && q.ScanCount >= *q.Settings.MaxScans:
		return QRScanLimitReached
	default:
		return QRScanAllowed
	}
}

// QRScanBlock enumerates why a scan is refused.
type QRScanBlock int

const (
	QRScanAllowed QRScanBlock = iota
	QRScanInactive
	QRScanExpired
	QRScanLimitReached
)

// RecordScan increments the counters and appends to the history, keeping at most maxHistory entries.
func (q *QRCode) RecordScan(scan ScanRecord, maxHistory int) {
	seen := false
	if scan.IPAddress != "" {
		for _, h := range q.Analytics.ScanHistory {
			if h.IPAddress == scan.IPAddress {
				seen = true

				break
			}
		}
	}

	q.ScanCount++
	q.Analytics.TotalScans++
	if !seen {
		q.Analytics.UniqueScans++
	}
	ts := scan.Timestamp
	q.Analytics.LastScannedAt = &ts
	q.Analytics.ScanHistory = append(q.Analytics.ScanHistory, scan)
	if maxHistory > 0 && len(q.Analytics.ScanHistory) > maxHistory {
		q.Analytics.ScanHistory = q.Analytics.ScanHistory[len(q.Analytics.ScanHistory)-maxHistory:]
	}
}

// ResetScans clears counters and history.
func (q *QRCode) ResetScans() {
	q.ScanCount = 0
	q.Analytics = QRAnalytics{}
}

// QRSettingsPatch carries a partial settings change. Nil fields are left untouched.
// ClearExpiresAt and ClearMaxScans drop the corresponding limit.
type QRSettingsPatch struct {
	Size                 *int
	ForegroundColor      *string
	BackgroundColor      *string
	ErrorCorrectionLevel *string
	Margin               *int
	ExpiresAt            *time.Time
	MaxScans             *int
	ClearExpiresAt       bool
	ClearMaxScans        bool
}

// QRCodePatch carries a partial QR update. Nil fields are left untouched.
type QRCodePatch struct {
	Name     *string
	IsActive *bool
	Settings *QRSettingsPatch
	Content  map[string]any
}
