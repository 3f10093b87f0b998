package impl

import (
	"testing"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQRPayload(t *testing.T) {
	handle := "janedoe1234"
	profile := &entity.Profile{
		ID:          uuid.MustParse("0190a1b2-0000-7000-8000-000000000001"),
		Username:    &handle,
		DisplayName: "Jane Doe",
		Company:     "Acme",
		ContactInfo: entity.ContactInfo{Email: "jane@example.com"},
	}
	anonymous := &entity.Profile{ID: profile.ID}

	tests := []struct {
		name    string
		qrType  entity.QRType
		content map[string]any
		profile *entity.Profile
		want    string
	}{
		{name: "profile by handle", qrType: entity.QRTypeProfile, profile: profile, want: "https://taponn.app/profile/janedoe1234"},
		{name: "profile by id", qrType: entity.QRTypeProfile, profile: anonymous, want: "https://taponn.app/profile/0190a1b2-0000-7000-8000-000000000001"},
		{
			name:    "whatsapp",
			qrType:  entity.QRTypeWhatsApp,
			content: map[string]any{"phone": "+1 (555) 010-0000", "message": "Hi there & welcome"},
			want:    "https://wa.me/15550100000?text=Hi%20there%20%26%20welcome",
		},
		{
			name:    "email",
			qrType:  entity.QRTypeEmail,
			content: map[string]any{"email": "a@b.co", "subject": "Hello", "body": "See you"},
			want:    "mailto:a@b.co?subject=Hello&body=See%20you",
		},
		{name: "phone", qrType: entity.QRTypePhone, content: map[string]any{"phone": "+15550100"}, want: "tel:+15550100"},
		{name: "linkedin", qrType: entity.QRTypeLinkedIn, content: map[string]any{"url": "https://linkedin.com/in/jane"}, want: "https://linkedin.com/in/jane"},
		{name: "url", qrType: entity.QRTypeURL, content: map[string]any{"url": "https://example.com"}, want: "https://example.com"},
		{
			name:    "wifi",
			qrType:  entity.QRTypeWiFi,
			content: map[string]any{"ssid": "Office", "password": "secret", "encryption": "WPA2"},
			want:    "WIFI:T:WPA2;S:Office;P:secret;;",
		},
		{name: "text", qrType: entity.QRTypeText, content: map[string]any{"text": "hello"}, want: "hello"},
		{name: "custom", qrType: entity.QRTypeCustom, content: map[string]any{"custom": "anything"}, want: "anything"},
		{
			name:    "contact falls back to profile",
			qrType:  entity.QRTypeContact,
			content: map[string]any{"phone": "+15550100"},
			profile: profile,
			want:    "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nORG:Acme\nTEL:+15550100\nEMAIL:jane@example.com\nEND:VCARD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildQRPayload(tt.qrType, tt.content, tt.profile, "https://taponn.app/")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildQRPayload_Errors(t *testing.T) {
	_, err := buildQRPayload("hologram", nil, nil, "https://taponn.app")
	assert.ErrorIs(t, err, domainerrors.ErrQRTypeUnsupported)

	_, err = buildQRPayload(entity.QRTypeURL, map[string]any{}, nil, "https://taponn.app")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = buildQRPayload(entity.QRTypeProfile, nil, nil, "https://taponn.app")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
