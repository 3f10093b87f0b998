package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"taponn/config"
	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/domain/service"
	"taponn/internal/usecase"
	"taponn/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxUploadBytes = 5 << 20

	profileImagePrefix = "profile-images"
	qrLogoPrefix       = "qr-logos"
)

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	txManager repository.TransactionManager
	storage   service.ObjectStorage
	maxBytes  int64
	logger    *slog.Logger

	newKey func() string
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Storage   service.ObjectStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxBytes := int64(defaultMaxUploadBytes)
	if params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxBytes = params.Config.Storage.MaxUploadBytes
	}

	return &uploadService{
		txManager: params.TxManager,
		storage:   params.Storage,
		maxBytes:  maxBytes,
		logger:    params.Logger,
		newKey:    uuid.NewString,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// attachFunc links a stored object URL to a record inside the upload transaction.
type attachFunc func(ctx context.Context, repoFactory repository.RepositoryFactory, url string) error

func (srv *uploadService) UploadProfileImage(ctx context.Context, actor *entity.User, profileID uuid.UUID, file *usecase.UploadFile) (*usecase.UploadOutput, error) {
	var attach attachFunc
	if profileID != uuid.Nil {
		attach = func(ctx context.Context, repoFactory repository.RepositoryFactory, url string) error {
			profileRepo := repoFactory.ProfileRepo()

			profile, err := findProfile(ctx, profileRepo, profileID)
			if err != nil {
				return err
			}
			if err := authorizeOwner(actor, profile.UserID); err != nil {
				return err
			}
			profile.Avatar = url

			return profileRepo.Update(ctx, profile)
		}
	}

	return srv.upload(ctx, actor, entity.PermissionProfileEdit, profileImagePrefix, file, attach)
}

func (srv *uploadService) UploadQRLogo(ctx context.Context, actor *entity.User, qrID uuid.UUID, file *usecase.UploadFile) (*usecase.UploadOutput, error) {
	var attach attachFunc
	if qrID != uuid.Nil {
		attach = func(ctx context.Context, repoFactory repository.RepositoryFactory, url string) error {
			qrRepo := repoFactory.QRCodeRepo()

			qr, err := findOwnedQRCode(ctx, qrRepo, actor, qrID)
			if err != nil {
				return err
			}
			qr.Logo = url

			return qrRepo.Update(ctx, qr)
		}
	}

	return srv.upload(ctx, actor, entity.PermissionQRGenerate, qrLogoPrefix, file, attach)
}

// upload validates and stores file, then runs attach when given. The stored
// object is removed again if attaching fails.
func (srv *uploadService) upload(
	ctx context.Context,
	actor *entity.User,
	permission entity.Permission,
	prefix string,
	file *usecase.UploadFile,
	attach attachFunc,
) (*usecase.UploadOutput, error) {
	if err := requirePermission(actor, permission); err != nil {
		return nil, err
	}
	if file == nil || len(file.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no file uploaded")
	}
	if int64(len(file.Data)) > srv.maxBytes {
		return nil, domainerrors.ErrUploadTooLarge.WrapMessage("limit is " + util.FormatBytes(srv.maxBytes))
	}

	mime := mimetype.Detect(file.Data)
	contentType := mime.String()
	if !slices.ContainsFunc(allowedImageTypes, mime.Is) {
		return nil, domainerrors.ErrUploadType.WrapMessage(contentType)
	}

	key := fmt.Sprintf("%s/%s/%s%s", prefix, actor.ID, srv.newKey(), mime.Extension())
	url, err := srv.storage.Put(ctx, key, contentType, file.Data)
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	if attach != nil {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return attach(ctx, repoFactory, url)
		})
		if err != nil {
			if delErr := srv.storage.Delete(ctx, key); delErr != nil {
				srv.log(ctx).Warn("Failed to remove orphaned upload", slog.String("key", key), slog.Any("error", delErr))
			}

			return nil, errors.Wrap(err, "failed to attach uploaded file")
		}
	}

	srv.log(ctx).Debug("File uploaded", slog.String("key", key), slog.Int("size", len(file.Data)))

	return &usecase.UploadOutput{
		URL:         url,
		Key:         key,
		ContentType: contentType,
		Size:        len(file.Data),
	}, nil
}

func (srv *uploadService) OpenFile(ctx context.Context, key string) (*usecase.StoredFile, error) {
	if !servableKey(key) {
		return nil, domainerrors.ErrFileNotFound
	}

	obj, err := srv.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domainerrors.ErrFileNotFound) {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return &usecase.StoredFile{ContentType: obj.ContentType, Data: obj.Data}, nil
}

// servableKey reports whether key names an object under one of the upload prefixes.
func servableKey(key string) bool {
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return false
	}

	return strings.HasPrefix(key, profileImagePrefix+"/") || strings.HasPrefix(key, qrLogoPrefix+"/")
}
