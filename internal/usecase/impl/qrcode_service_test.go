package impl

import (
	"context"
	"testing"
	"time"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/domain/service"
	mockSvc "taponn/internal/mocks/service"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// qrCodeServiceFixtures holds all test dependencies for QR code service tests.
type qrCodeServiceFixtures struct {
	service   *qrCodeService
	repos     *repoFixtures
	renderer  *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func createTestQRCodeService(t *testing.T) qrCodeServiceFixtures {
	repos := newRepoFixtures(t)
	renderer := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewQRCodeService(QRCodeServiceParams{
		TxManager: passthroughTx(t, repos),
		Renderer:  renderer,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*qrCodeService)
	svc.now = fixedClock

	return qrCodeServiceFixtures{
		service:   svc,
		repos:     repos,
		renderer:  renderer,
		publisher: publisher,
	}
}

func newOwnedQRCode(owner uuid.UUID) *entity.QRCode {
	qr := entity.NewQRCode(owner, uuid.New(), "Card", entity.QRTypeURL)
	qr.ID = uuid.New()
	qr.Content = map[string]any{"url": "https://example.com"}
	qr.Data = "https://example.com"

	return qr
}

func TestQRCodeService_CreateQRCode_DerivesPayloadFromType(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	profile := newOwnedProfile(owner.ID)
	maxScans := 50
	foreground := "#112233"

	fx.repos.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.renderer.EXPECT().
		RenderDataURL("https://wa.me/15550100?text=Hello", mock.MatchedBy(func(opts service.QRRenderOptions) bool {
			return opts.ForegroundColor == "#112233" && opts.Size == 200
		})).
		Return("data:image/png;base64,QQ==", nil)
	fx.repos.qrCodes.EXPECT().Create(ctx, mock.AnythingOfType("*entity.QRCode")).Return(nil)

	qr, err := fx.service.CreateQRCode(ctx, owner, &usecase.CreateQRCodeInput{
		Name:      "WhatsApp",
		Type:      entity.QRTypeWhatsApp,
		ProfileID: profile.ID,
		Content:   map[string]any{"phone": "+1 555 0100", "message": "Hello"},
		Settings:  &entity.QRSettingsPatch{ForegroundColor: &foreground, MaxScans: &maxScans},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/15550100?text=Hello", qr.Data)
	assert.Equal(t, "data:image/png;base64,QQ==", qr.QRImage)
	assert.Equal(t, "#FFFFFF", qr.Settings.BackgroundColor)
	assert.Equal(t, 50, *qr.Settings.MaxScans)
	assert.True(t, qr.IsActive)
	assert.Equal(t, owner.ID, qr.UserID)
}

func TestQRCodeService_CreateQRCode_RequiresProfileAccess(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	profile := newOwnedProfile(uuid.New())

	fx.repos.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)

	_, err := fx.service.CreateQRCode(ctx, &entity.User{ID: uuid.New()}, &usecase.CreateQRCodeInput{
		Name:      "Card",
		ProfileID: profile.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestQRCodeService_CreateQRCode_MissingProfile(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	profileID := uuid.New()

	fx.repos.profiles.EXPECT().FindByID(ctx, profileID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.CreateQRCode(ctx, &entity.User{ID: uuid.New()}, &usecase.CreateQRCodeInput{Name: "Card", ProfileID: profileID})

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestQRCodeService_CreateQRCode_UnknownType(t *testing.T) {
	fx := createTestQRCodeService(t)

	_, err := fx.service.CreateQRCode(context.Background(), &entity.User{ID: uuid.New()}, &usecase.CreateQRCodeInput{
		Name: "Card",
		Type: "hologram",
	})

	require.ErrorIs(t, err, domainerrors.ErrQRTypeUnsupported)
}

func TestQRCodeService_DeleteQRCode_Authorization(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	tests := []struct {
		name    string
		actor   *entity.User
		wantErr error
	}{
		{name: "owner", actor: &entity.User{ID: ownerID, Role: entity.RoleUser}},
		{name: "admin", actor: &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}},
		{name: "stranger", actor: &entity.User{ID: uuid.New(), Role: entity.RoleUser}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestQRCodeService(t)
			qr := newOwnedQRCode(ownerID)

			fx.repos.qrCodes.EXPECT().FindByID(ctx, qr.ID).Return(qr, nil)
			if tt.wantErr == nil {
				fx.repos.qrCodes.EXPECT().Delete(ctx, qr.ID).Return(nil)
			}

			err := fx.service.DeleteQRCode(ctx, tt.actor, qr.ID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestQRCodeService_UpdateQRCode_StrangerForbidden(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	qr := newOwnedQRCode(uuid.New())
	name := "Hijacked"

	fx.repos.qrCodes.EXPECT().FindByID(ctx, qr.ID).Return(qr, nil)

	_, err := fx.service.UpdateQRCode(ctx, &entity.User{ID: uuid.New()}, qr.ID, entity.QRCodePatch{Name: &name})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, "Card", qr.Name)
}

func TestQRCodeService_UpdateQRCode_NewContentRecomputesPayload(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	qr := newOwnedQRCode(owner.ID)
	profile := newOwnedProfile(owner.ID)
	profile.ID = qr.ProfileID

	fx.repos.qrCodes.EXPECT().FindByID(ctx, qr.ID).Return(qr, nil)
	fx.repos.profiles.EXPECT().FindByID(ctx, qr.ProfileID).Return(profile, nil)
	fx.renderer.EXPECT().RenderDataURL("https://example.org", mock.Anything).Return("data:image/png;base64,Qg==", nil)
	fx.repos.qrCodes.EXPECT().Update(ctx, qr).Return(nil)

	got, err := fx.service.UpdateQRCode(ctx, owner, qr.ID, entity.QRCodePatch{Content: map[string]any{"url": "https://example.org"}})

	require.NoError(t, err)
	assert.Equal(t, "https://example.org", got.Data)
	assert.Equal(t, "data:image/png;base64,Qg==", got.QRImage)
}

func TestQRCodeService_UpdateQRCode_ZeroMarginAndClearedLimits(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	qr := newOwnedQRCode(owner.ID)
	expiresAt := fixedNow.Add(24 * time.Hour)
	maxScans := 5
	qr.Settings.ExpiresAt = &expiresAt
	qr.Settings.MaxScans = &maxScans
	margin := 0

	fx.repos.qrCodes.EXPECT().FindByID(ctx, qr.ID).Return(qr, nil)
	fx.renderer.EXPECT().
		RenderDataURL(qr.Data, mock.MatchedBy(func(opts service.QRRenderOptions) bool { return opts.Margin == 0 })).
		Return("data:image/png;base64,Qw==", nil)
	fx.repos.qrCodes.EXPECT().Update(ctx, qr).Return(nil)

	got, err := fx.service.UpdateQRCode(ctx, owner, qr.ID, entity.QRCodePatch{
		Settings: &entity.QRSettingsPatch{Margin: &margin, ClearExpiresAt: true, ClearMaxScans: true},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, got.Settings.Margin)
	assert.Nil(t, got.Settings.ExpiresAt)
	assert.Nil(t, got.Settings.MaxScans)
	assert.Equal(t, entity.DefaultQRSettings().Size, got.Settings.Size)
}

func TestQRCodeService_UpdateQRCode_RejectsNonPositiveMaxScans(t *testing.T) {
	fx := createTestQRCodeService(t)
	zero := 0

	_, err := fx.service.UpdateQRCode(context.Background(), &entity.User{ID: uuid.New()}, uuid.New(), entity.QRCodePatch{
		Settings: &entity.QRSettingsPatch{MaxScans: &zero},
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMergeQRSettings(t *testing.T) {
	expiresAt := fixedNow.Add(time.Hour)
	later := fixedNow.Add(48 * time.Hour)
	limit := 10
	newLimit := 3
	margin := 0
	base := entity.DefaultQRSettings()
	base.ExpiresAt = &expiresAt
	base.MaxScans = &limit

	tests := []struct {
		name  string
		patch entity.QRSettingsPatch
		check func(t *testing.T, got entity.QRSettings)
	}{
		{
			name:  "empty patch keeps everything",
			patch: entity.QRSettingsPatch{},
			check: func(t *testing.T, got entity.QRSettings) {
				assert.Equal(t, base, got)
			},
		},
		{
			name:  "zero margin is applied",
			patch: entity.QRSettingsPatch{Margin: &margin},
			check: func(t *testing.T, got entity.QRSettings) {
				assert.Equal(t, 0, got.Margin)
				assert.Equal(t, base.Size, got.Size)
			},
		},
		{
			name:  "new limits replace old ones",
			patch: entity.QRSettingsPatch{ExpiresAt: &later, MaxScans: &newLimit},
			check: func(t *testing.T, got entity.QRSettings) {
				require.NotNil(t, got.ExpiresAt)
				assert.Equal(t, later, *got.ExpiresAt)
				require.NotNil(t, got.MaxScans)
				assert.Equal(t, 3, *got.MaxScans)
			},
		},
		{
			name:  "clear flags drop limits",
			patch: entity.QRSettingsPatch{ClearExpiresAt: true, ClearMaxScans: true},
			check: func(t *testing.T, got entity.QRSettings) {
				assert.Nil(t, got.ExpiresAt)
				assert.Nil(t, got.MaxScans)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, mergeQRSettings(base, tt.patch))
		})
	}
}

func TestQRCodeService_ScanQRCode_RecordsScanAndEvent(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	qr := newOwnedQRCode(uuid.New())

	fx.repos.qrCodes.EXPECT().FindByIDForUpdate(ctx, qr.ID).Return(qr, nil)
	fx.repos.qrCodes.EXPECT().Update(ctx, qr).Return(nil)
	fx.repos.analytics.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *entity.AnalyticsEvent) bool {
			return e.EventType == entity.EventTypeQRScan && *e.QRCodeID == qr.ID && e.UserID == nil &&
				e.Metadata.IPAddress == "10.0.0.1"
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).Return(nil)

	out, err := fx.service.ScanQRCode(ctx, qr.ID, &usecase.ScanInput{IPAddress: "10.0.0.1", UserAgent: "curl/8"})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", out.RedirectURL)
	assert.Equal(t, 1, qr.ScanCount)
	assert.Equal(t, 1, qr.Analytics.UniqueScans)
	assert.Equal(t, fixedNow, *qr.Analytics.LastScannedAt)
}

func TestQRCodeService_ScanQRCode_Blocked(t *testing.T) {
	ctx := context.Background()
	past := fixedNow.Add(-time.Minute)
	limit := 1

	tests := []struct {
		name    string
		mutate  func(qr *entity.QRCode)
		wantErr error
	}{
		{name: "inactive", mutate: func(qr *entity.QRCode) { qr.IsActive = false }, wantErr: domainerrors.ErrQRCodeInactive},
		{name: "expired", mutate: func(qr *entity.QRCode) { qr.Settings.ExpiresAt = &past }, wantErr: domainerrors.ErrQRCodeExpired},
		{name: "limit reached", mutate: func(qr *entity.QRCode) { qr.Settings.MaxScans = &limit; qr.ScanCount = 1 }, wantErr: domainerrors.ErrQRCodeScanLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestQRCodeService(t)
			qr := newOwnedQRCode(uuid.New())
			tt.mutate(qr)

			fx.repos.qrCodes.EXPECT().FindByIDForUpdate(ctx, qr.ID).Return(qr, nil)

			_, err := fx.service.ScanQRCode(ctx, qr.ID, &usecase.ScanInput{})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQRCodeService_ScanQRCode_NotFound(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repos.qrCodes.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, repository.ErrQRCodeNotFound)

	_, err := fx.service.ScanQRCode(ctx, id, &usecase.ScanInput{})

	require.ErrorIs(t, err, domainerrors.ErrQRCodeNotFound)
}

func TestQRCodeService_RegenerateQRCode_ResetsCounters(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	profile := newOwnedProfile(owner.ID)
	handle := "jdoe"
	profile.Username = &handle

	qr := entity.NewQRCode(owner.ID, profile.ID, "Card", entity.QRTypeProfile)
	qr.ID = uuid.New()
	qr.Data = "https://taponn.app/profile/olddoe"
	qr.RecordScan(entity.ScanRecord{Timestamp: fixedNow, IPAddress: "10.0.0.1"}, 10)

	fx.repos.qrCodes.EXPECT().FindByID(ctx, qr.ID).Return(qr, nil)
	fx.repos.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.renderer.EXPECT().RenderDataURL("https://taponn.app/profile/jdoe", mock.Anything).Return("data:image/png;base64,Qw==", nil)
	fx.repos.qrCodes.EXPECT().Update(ctx, qr).Return(nil)

	got, err := fx.service.RegenerateQRCode(ctx, owner, qr.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://taponn.app/profile/jdoe", got.Data)
	assert.Zero(t, got.ScanCount)
	assert.Empty(t, got.Analytics.ScanHistory)
}

func TestQRCodeService_GetQRCodeAnalytics_NewestFirst(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	qr := newOwnedQRCode(owner.ID)
	for i := range 12 {
		qr.RecordScan(entity.ScanRecord{Timestamp: fixedNow.Add(time.Duration(i) * time.Minute)}, 100)
	}

	fx.repos.qrCodes.EXPECT().FindByID(ctx, qr.ID).Return(qr, nil)

	out, err := fx.service.GetQRCodeAnalytics(ctx, owner, qr.ID)

	require.NoError(t, err)
	assert.Equal(t, 12, out.TotalScans)
	require.Len(t, out.RecentScans, recentScansLimit)
	assert.Equal(t, fixedNow.Add(11*time.Minute), out.RecentScans[0].Timestamp)
	assert.Equal(t, fixedNow.Add(2*time.Minute), out.RecentScans[9].Timestamp)
}

func TestQRCodeService_RenderQRCodePNG(t *testing.T) {
	fx := createTestQRCodeService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	qr := newOwnedQRCode(owner.ID)

	fx.repos.qrCodes.EXPECT().FindByID(ctx, qr.ID).Return(qr, nil)
	fx.renderer.EXPECT().RenderPNG(qr.Data, renderOptions(qr.Settings)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.RenderQRCodePNG(ctx, owner, qr.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
