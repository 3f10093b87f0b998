package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestQRCode_ScanBlockReason(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	limit := 2

	tests := []struct {
		name   string
		mutate func(q *QRCode)
		want   QRScanBlock
	}{
		{"active", func(q *QRCode) {}, QRScanAllowed},
		{"inactive", func(q *QRCode) { q.IsActive = false }, QRScanInactive},
		{"expired", func(q *QRCode) { q.Settings.ExpiresAt = &past }, QRScanExpired},
		{"not yet expired", func(q *QRCode) { q.Settings.ExpiresAt = &future }, QRScanAllowed},
		{"limit reached", func(q *QRCode) { q.Settings.MaxScans = &limit; q.ScanCount = 2 }, QRScanLimitReached},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qr := NewQRCode(uuid.New(), uuid.New(), "Card", QRTypeProfile)
			tt.mutate(qr)
			assert.Equal(t, tt.want, qr.ScanBlockReason(now))
		})
	}
}

func TestQRCode_RecordScan_CountsUniqueIPsAndCapsHistory(t *testing.T) {
	qr := NewQRCode(uuid.New(), uuid.New(), "Card", QRTypeProfile)
	now := time.Now()

	qr.RecordScan(ScanRecord{Timestamp: now, IPAddress: "10.0.0.1"}, 2)
	qr.RecordScan(ScanRecord{Timestamp: now, IPAddress: "10.0.0.1"}, 2)
	qr.RecordScan(ScanRecord{Timestamp: now.Add(time.Second), IPAddress: "10.0.0.2"}, 2)

	assert.Equal(t, 3, qr.ScanCount)
	assert.Equal(t, 3, qr.Analytics.TotalScans)
	assert.Equal(t, 2, qr.Analytics.UniqueScans)
	assert.Len(t, qr.Analytics.ScanHistory, 2)
	assert.Equal(t, now.Add(time.Second), *qr.Analytics.LastScannedAt)

	qr.ResetScans()
	assert.Zero(t, qr.ScanCount)
	assert.Empty(t, qr.Analytics.ScanHistory)
}
