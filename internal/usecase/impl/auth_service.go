package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"taponn/config"
	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"
	"taponn/internal/domain/service"
	"taponn/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	qrService    service.QRCodeService
	lockout      config.LockoutConfig
	frontendURL  string
	qrDefaults   entity.QRSettings
	logger       *slog.Logger

	now    func() time.Time
	suffix func() int
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var lockout config.LockoutConfig
	if params.Config.Auth != nil {
		lockout = params.Config.Auth.Lockout
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		qrService:    params.QRService,
		lockout:      lockout,
		frontendURL:  params.Config.App.FrontendURL,
		qrDefaults:   qrSettingsFromConfig(params.Config),
		logger:       params.Logger,
		now:          time.Now,
		suffix:       randomSuffix,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail trims and lower-cases an address before storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account, its default profile and a QR code pointing at the
// profile in a single transaction, then issues an access token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := entity.NewUser(name, email, passwordHash)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		profile := entity.NewProfile(user.ID, name)
		if err := createWithGeneratedHandle(ctx, repoFactory.ProfileRepo(), profile, srv.suffix); err != nil {
			return err
		}

		qr := entity.NewQRCode(user.ID, profile.ID, name+" QR Code", entity.QRTypeProfile)
		qr.Settings = srv.qrDefaults
		qr.Content = map[string]any{}
		qr.Data = profileURL(srv.frontendURL, profile)

		image, err := srv.qrService.RenderDataURL(qr.Data, renderOptions(qr.Settings))
		if err != nil {
			return domainerrors.ErrQRRenderFailed.WrapMessage(err.Error())
		}
		qr.QRImage = image

		if err := repoFactory.QRCodeRepo().Create(ctx, qr); err != nil {
			return errors.Wrap(err, "failed to create default QR code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

// Login verifies the credentials and maintains the failed-attempt counter.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	now := srv.now()

	maxAttempts := 0
	if srv.lockout.Enabled {
		maxAttempts = srv.lockout.MaxAttempts
	}

	var user *entity.User
	// loginErr is returned after commit so the updated counter is persisted.
	var loginErr error
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			loginErr = domainerrors.ErrInvalidCredentials

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		user = found

		if !user.IsActive() {
			loginErr = domainerrors.ErrUserInactive

			return nil
		}
		if srv.lockout.Enabled && user.LockedAt(now) {
			loginErr = domainerrors.ErrAccountLocked

			return nil
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			user.RecordFailedLogin(now, maxAttempts, srv.lockout.Duration)
			loginErr = domainerrors.ErrInvalidCredentials
		} else {
			user.RecordSuccessfulLogin(now)
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update login state")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	if loginErr != nil {
		srv.log(ctx).Info("Login rejected", slog.String("email", email), slog.Any("reason", loginErr))

		return nil, loginErr
	}

	token, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

// Authenticate resolves a bearer token to an active account.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token subject no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token subject")
	}
	if !user.IsActive() {
		return nil, domainerrors.ErrUserInactive
	}

	return user, nil
}
