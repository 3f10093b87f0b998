package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "taponn/internal/delivery/context"
	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	actorKey     = "actor"
	bearerScheme = "bearer"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves bearer tokens to accounts and enforces roles and permissions.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Authenticate requires a valid bearer token and stores the account on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		m.setActor(c, user)

		return next(c)
	}
}

// OptionalAuthenticate attaches the account when a valid bearer token is sent.
// Requests without a token, or with one that does not resolve, continue anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return next(c)
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Ignoring unusable bearer token", slog.Any("error", err))

			return next(c)
		}

		m.setActor(c, user)

		return next(c)
	}
}

// RequireAdmin rejects callers without an administrative role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := GetActor(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}
		if !actor.IsAdmin() {
			return domainerrors.ErrForbidden.WithDetails("admin role required")
		}

		return next(c)
	}
}

// RequirePermission is a middleware factory that checks the caller holds permission.
// Administrators pass every check. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(permission entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if !actor.HasPermission(permission) {
				return domainerrors.ErrForbidden.WithDetails("missing permission " + string(permission))
			}

			return next(c)
		}
	}
}

// setActor stores the account and enriches the request-scoped logger with its ID.
func (m *AuthMiddleware) setActor(c echo.Context, user *entity.User) {
	SetActor(c, user)

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", user.ID.String()))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
}

// SetActor stores the authenticated account on the echo context.
func SetActor(c echo.Context, user *entity.User) {
	c.Set(actorKey, user)
}

// GetActor returns the authenticated account, if any.
func GetActor(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(actorKey).(*entity.User)

	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
