package handler

import (
	"net/http"
	"testing"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	mockUsecase "taponn/internal/mocks/usecase"
	"taponn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestEcho(t *testing.T, actor *entity.User) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/me", h.Me, withActor(actor))

	return e, uc
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns token and public user", func(t *testing.T) {
		e, uc := newAuthTestEcho(t, nil)
		user := newUser(entity.RoleUser)
		user.PasswordHash = "$2a$12$secret"
		user.PasswordResetToken = "reset-token"

		uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "secret1",
		}).Return(&usecase.AuthOutput{AccessToken: "jwt-token", User: user}, nil)

		rec := doJSON(e, http.MethodPost, "/api/auth/register",
			`{"name":"Ada Lovelace","email":"ada@example.com","password":"secret1"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		out := decodeData[map[string]any](t, rec)
		assert.Equal(t, "jwt-token", out["access_token"])
		assert.Equal(t, "bearer", out["token_type"])

		userJSON, ok := out["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ada@example.com", userJSON["email"])
		assert.NotContains(t, userJSON, "passwordHash")
		assert.NotContains(t, rec.Body.String(), "secret")
		assert.NotContains(t, rec.Body.String(), "reset-token")
	})

	t.Run("rejects short password before calling use case", func(t *testing.T) {
		e, _ := newAuthTestEcho(t, nil)

		rec := doJSON(e, http.MethodPost, "/api/auth/register",
			`{"name":"Ada","email":"ada@example.com","password":"123"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, "password must be at least 6 characters", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := newAuthTestEcho(t, nil)

		rec := doJSON(e, http.MethodPost, "/api/auth/register", `{"name":`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("duplicate email", func(t *testing.T) {
		e, uc := newAuthTestEcho(t, nil)
		uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := doJSON(e, http.MethodPost, "/api/auth/register",
			`{"name":"Ada","email":"ada@example.com","password":"secret1"}`)

		requireErrorCode(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, uc := newAuthTestEcho(t, nil)
		user := newUser(entity.RoleUser)
		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "secret1"}).
			Return(&usecase.AuthOutput{AccessToken: "jwt-token", User: user}, nil)

		rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"secret1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		out := decodeData[TokenResponse](t, rec)
		assert.Equal(t, "jwt-token", out.AccessToken)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("bad credentials carry a bearer challenge", func(t *testing.T) {
		e, uc := newAuthTestEcho(t, nil)
		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	})

	t.Run("locked account", func(t *testing.T) {
		e, uc := newAuthTestEcho(t, nil)
		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAccountLocked)

		rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

		requireErrorCode(t, rec, http.StatusLocked, "ACCOUNT_LOCKED")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	user := newUser(entity.RoleAdmin)
	e, _ := newAuthTestEcho(t, user)

	rec := doJSON(e, http.MethodGet, "/api/auth/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[UserResponse](t, rec)
	assert.Equal(t, user.ID, out.ID)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.ElementsMatch(t, entity.DefaultPermissions(), out.Permissions)
}
