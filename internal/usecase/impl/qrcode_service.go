package impl

import (
	"context"
	"log/slog"
	"time"

	"taponn/config"
	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/domain/service"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxScanHistory = 100
	recentScansLimit      = 10
)

// qrCodeService implements the QRCodeUsecase interface.
type qrCodeService struct {
	txManager   repository.TransactionManager
	renderer    service.QRCodeService
	events      eventRecorder
	frontendURL string
	qrDefaults  entity.QRSettings
	maxHistory  int
	logger      *slog.Logger

	now func() time.Time
}

// QRCodeServiceParams holds dependencies for QRCodeService, injected by Fx.
type QRCodeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Renderer  service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewQRCodeService is the constructor for qrCodeService.
func NewQRCodeService(params QRCodeServiceParams) usecase.QRCodeUsecase {
	maxHistory := defaultMaxScanHistory
	if params.Config.QRCode != nil && params.Config.QRCode.MaxScanHistory > 0 {
		maxHistory = params.Config.QRCode.MaxScanHistory
	}

	return &qrCodeService{
		txManager:   params.TxManager,
		renderer:    params.Renderer,
		events:      newEventRecorder(params.Publisher, params.Logger),
		frontendURL: params.Config.App.FrontendURL,
		qrDefaults:  qrSettingsFromConfig(params.Config),
		maxHistory:  maxHistory,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *qrCodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// qrSettingsFromConfig returns the default render settings with configured overrides applied.
func qrSettingsFromConfig(cfg *config.Config) entity.QRSettings {
	settings := entity.DefaultQRSettings()
	if cfg == nil || cfg.QRCode == nil {
		return settings
	}
	if cfg.QRCode.Size > 0 {
		settings.Size = cfg.QRCode.Size
	}
	if cfg.QRCode.ErrorCorrectionLevel != "" {
		settings.ErrorCorrectionLevel = cfg.QRCode.ErrorCorrectionLevel
	}

	return settings
}

// mergeQRSettings applies the fields present in patch to base.
func mergeQRSettings(base entity.QRSettings, patch entity.QRSettingsPatch) entity.QRSettings {
	if patch.Size != nil {
		base.Size = *patch.Size
	}
	if patch.ForegroundColor != nil {
		base.ForegroundColor = *patch.ForegroundColor
	}
	if patch.BackgroundColor != nil {
		base.BackgroundColor = *patch.BackgroundColor
	}
	if patch.ErrorCorrectionLevel != nil {
		base.ErrorCorrectionLevel = *patch.ErrorCorrectionLevel
	}
	if patch.Margin != nil {
		base.Margin = *patch.Margin
	}
	switch {
	case patch.ExpiresAt != nil:
		expiresAt := *patch.ExpiresAt
		base.ExpiresAt = &expiresAt
	case patch.ClearExpiresAt:
		base.ExpiresAt = nil
	}
	switch {
	case patch.MaxScans != nil:
		maxScans := *patch.MaxScans
		base.MaxScans = &maxScans
	case patch.ClearMaxScans:
		base.MaxScans = nil
	}

	return base
}

func validateQRSettings(patch *entity.QRSettingsPatch) error {
	if patch == nil {
		return nil
	}
	if patch.MaxScans != nil && *patch.MaxScans <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("maxScans must be greater than 0")
	}
	if patch.Margin != nil && *patch.Margin < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("margin must not be negative")
	}

	return nil
}

func renderOptions(settings entity.QRSettings) service.QRRenderOptions {
	return service.QRRenderOptions{
		Size:                 settings.Size,
		ForegroundColor:      settings.ForegroundColor,
		BackgroundColor:      settings.BackgroundColor,
		ErrorCorrectionLevel: settings.ErrorCorrectionLevel,
		Margin:               settings.Margin,
	}
}

// findProfile maps the repository miss to the domain not-found error.
func findProfile(ctx context.Context, repo repository.ProfileRepository, id uuid.UUID) (*entity.Profile, error) {
	profile, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound.WrapMessage(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func findQRCode(ctx context.Context, repo repository.QRCodeRepository, id uuid.UUID) (*entity.QRCode, error) {
	qr, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrQRCodeNotFound) {
		return nil, domainerrors.ErrQRCodeNotFound.WrapMessage(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find QR code")
	}

	return qr, nil
}

// findOwnedQRCode loads a code the actor owns or administers.
func findOwnedQRCode(ctx context.Context, repo repository.QRCodeRepository, actor *entity.User, id uuid.UUID) (*entity.QRCode, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	qr, err := findQRCode(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, qr.UserID); err != nil {
		return nil, err
	}

	return qr, nil
}

func (srv *qrCodeService) render(qr *entity.QRCode) error {
	image, err := srv.renderer.RenderDataURL(qr.Data, renderOptions(qr.Settings))
	if err != nil {
		return domainerrors.ErrQRRenderFailed.WrapMessage(err.Error())
	}
	qr.QRImage = image

	return nil
}

// CreateQRCode derives the payload from the linked profile and content, then renders and stores the code.
func (srv *qrCodeService) CreateQRCode(ctx context.Context, actor *entity.User, input *usecase.CreateQRCodeInput) (*entity.QRCode, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	qrType := input.Type
	if qrType == "" {
		qrType = entity.QRTypeProfile
	}
	if !qrType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrQRTypeUnsupported, "type %q", qrType)
	}
	if err := validateQRSettings(input.Settings); err != nil {
		return nil, err
	}

	var qr *entity.QRCode
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := findProfile(ctx, repoFactory.ProfileRepo(), input.ProfileID)
		if err != nil {
			return err
		}
		if err := authorizeOwner(actor, profile.UserID); err != nil {
			return err
		}

		payload, err := buildQRPayload(qrType, input.Content, profile, srv.frontendURL)
		if err != nil {
			return err
		}

		qr = entity.NewQRCode(profile.UserID, profile.ID, input.Name, qrType)
		qr.Content = input.Content
		if qr.Content == nil {
			qr.Content = map[string]any{}
		}
		qr.Data = payload
		qr.Settings = srv.qrDefaults
		if input.Settings != nil {
			qr.Settings = mergeQRSettings(srv.qrDefaults, *input.Settings)
		}
		if err := srv.render(qr); err != nil {
			return err
		}

		return repoFactory.QRCodeRepo().Create(ctx, qr)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	srv.log(ctx).Debug("QR code created", slog.Any("qrCodeID", qr.ID), slog.String("type", string(qr.Type)))

	return qr, nil
}

func (srv *qrCodeService) ListQRCodes(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.QRCode, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	limit, offset = normalizePage(limit, offset)

	var codes []*entity.QRCode
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		codes, err = repoFactory.QRCodeRepo().ListByUser(ctx, actor.ID, limit, offset)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list QR codes")
	}

	return codes, nil
}

func (srv *qrCodeService) GetQRCode(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.QRCode, error) {
	var qr *entity.QRCode
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		qr, err = findOwnedQRCode(ctx, repoFactory.QRCodeRepo(), actor, id)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get QR code")
	}

	return qr, nil
}

// UpdateQRCode applies the patch. New content recomputes the payload; any change to
// the payload or settings re-renders the image.
func (srv *qrCodeService) UpdateQRCode(ctx context.Context, actor *entity.User, id uuid.UUID, patch entity.QRCodePatch) (*entity.QRCode, error) {
	if err := validateQRSettings(patch.Settings); err != nil {
		return nil, err
	}

	var qr *entity.QRCode
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		qrRepo := repoFactory.QRCodeRepo()

		var err error
		qr, err = findOwnedQRCode(ctx, qrRepo, actor, id)
		if err != nil {
			return err
		}

		rerender := false
		if patch.Name != nil {
			qr.Name = *patch.Name
		}
		if patch.IsActive != nil {
			qr.IsActive = *patch.IsActive
		}
		if patch.Settings != nil {
			qr.Settings = mergeQRSettings(qr.Settings, *patch.Settings)
			rerender = true
		}
		if patch.Content != nil {
			profile, err := findProfile(ctx, repoFactory.ProfileRepo(), qr.ProfileID)
			if err != nil {
				return err
			}
			payload, err := buildQRPayload(qr.Type, patch.Content, profile, srv.frontendURL)
			if err != nil {
				return err
			}
			qr.Content = patch.Content
			qr.Data = payload
			rerender = true
		}
		if rerender {
			if err := srv.render(qr); err != nil {
				return err
			}
		}

		return qrRepo.Update(ctx, qr)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update QR code")
	}

	return qr, nil
}

func (srv *qrCodeService) DeleteQRCode(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		qrRepo := repoFactory.QRCodeRepo()

		if _, err := findOwnedQRCode(ctx, qrRepo, actor, id); err != nil {
			return err
		}

		err := qrRepo.Delete(ctx, id)
		if errors.Is(err, repository.ErrQRCodeNotFound) {
			return domainerrors.ErrQRCodeNotFound.WrapMessage(id.String())
		}

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete QR code")
	}

	srv.log(ctx).Info("QR code deleted", slog.Any("qrCodeID", id), slog.Any("actorID", actor.ID))

	return nil
}

func (srv *qrCodeService) ToggleQRCodeStatus(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.QRCode, error) {
	var qr *entity.QRCode
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		qrRepo := repoFactory.QRCodeRepo()

		var err error
		qr, err = findOwnedQRCode(ctx, qrRepo, actor, id)
		if err != nil {
			return err
		}
		qr.IsActive = !qr.IsActive

		return qrRepo.Update(ctx, qr)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle QR code status")
	}

	return qr, nil
}

func (srv *qrCodeService) RegenerateQRCode(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.QRCode, error) {
	var qr *entity.QRCode
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		qrRepo := repoFactory.QRCodeRepo()

		var err error
		qr, err = findOwnedQRCode(ctx, qrRepo, actor, id)
		if err != nil {
			return err
		}

		profile, err := findProfile(ctx, repoFactory.ProfileRepo(), qr.ProfileID)
		if err != nil {
			return err
		}
		payload, err := buildQRPayload(qr.Type, qr.Content, profile, srv.frontendURL)
		if err != nil {
			return err
		}

		qr.Data = payload
		qr.ResetScans()
		if err := srv.render(qr); err != nil {
			return err
		}

		return qrRepo.Update(ctx, qr)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to regenerate QR code")
	}

	return qr, nil
}

func (srv *qrCodeService) GetQRCodeAnalytics(ctx context.Context, actor *entity.User, id uuid.UUID) (*usecase.QRCodeAnalyticsOutput, error) {
	qr, err := srv.GetQRCode(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return &usecase.QRCodeAnalyticsOutput{
		QRCodeID:      qr.ID,
		ScanCount:     qr.ScanCount,
		TotalScans:    qr.Analytics.TotalScans,
		UniqueScans:   qr.Analytics.UniqueScans,
		LastScannedAt: qr.Analytics.LastScannedAt,
		RecentScans:   recentScans(qr.Analytics.ScanHistory, recentScansLimit),
	}, nil
}

// recentScans returns up to n history entries, newest first.
func recentScans(history []entity.ScanRecord, n int) []entity.ScanRecord {
	count := min(n, len(history))
	out := make([]entity.ScanRecord, 0, count)
	for i := len(history) - 1; i >= len(history)-count; i-- {
		out = append(out, history[i])
	}

	return out
}

func (srv *qrCodeService) RenderQRCodePNG(ctx context.Context, actor *entity.User, id uuid.UUID) ([]byte, error) {
	qr, err := srv.GetQRCode(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.renderer.RenderPNG(qr.Data, renderOptions(qr.Settings))
	if err != nil {
		return nil, domainerrors.ErrQRRenderFailed.WrapMessage(err.Error())
	}

	return png, nil
}

func (srv *qrCodeService) RenderQRCodeDataURL(ctx context.Context, actor *entity.User, id uuid.UUID) (string, error) {
	qr, err := srv.GetQRCode(ctx, actor, id)
	if err != nil {
		return "", err
	}

	dataURL, err := srv.renderer.RenderDataURL(qr.Data, renderOptions(qr.Settings))
	if err != nil {
		return "", domainerrors.ErrQRRenderFailed.WrapMessage(err.Error())
	}

	return dataURL, nil
}

// ScanQRCode records a scan under a row lock and returns the payload to redirect to.
func (srv *qrCodeService) ScanQRCode(ctx context.Context, id uuid.UUID, input *usecase.ScanInput) (*usecase.ScanOutput, error) {
	now := srv.now()

	var qr *entity.QRCode
	var event *entity.AnalyticsEvent
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		qrRepo := repoFactory.QRCodeRepo()

		var err error
		qr, err = qrRepo.FindByIDForUpdate(ctx, id)
		if errors.Is(err, repository.ErrQRCodeNotFound) {
			return domainerrors.ErrQRCodeNotFound.WrapMessage(id.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock QR code")
		}

		switch qr.ScanBlockReason(now) {
		case entity.QRScanInactive:
			return domainerrors.ErrQRCodeInactive
		case entity.QRScanExpired:
			return domainerrors.ErrQRCodeExpired
		case entity.QRScanLimitReached:
			return domainerrors.ErrQRCodeScanLimit
		}

		qr.RecordScan(entity.ScanRecord{
			Timestamp: now,
			IPAddress: input.IPAddress,
			UserAgent: input.UserAgent,
			Device:    input.Device,
		}, srv.maxHistory)
		if err := qrRepo.Update(ctx, qr); err != nil {
			return errors.Wrap(err, "failed to update scan counters")
		}

		qrID, profileID := qr.ID, qr.ProfileID
		event = &entity.AnalyticsEvent{
			QRCodeID:      &qrID,
			ProfileID:     &profileID,
			EventType:     entity.EventTypeQRScan,
			EventCategory: entity.DefaultEventCategory,
			EventAction:   "scan",
			Metadata: entity.EventMetadata{
				IPAddress: input.IPAddress,
				UserAgent: input.UserAgent,
				Referrer:  input.Referrer,
				Device:    input.Device,
				Timestamp: now,
			},
		}

		return srv.events.record(ctx, repoFactory.AnalyticsRepo(), event)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record QR scan")
	}

	srv.events.publish(ctx, event)

	return &usecase.ScanOutput{QRCode: qr, RedirectURL: qr.Data}, nil
}
