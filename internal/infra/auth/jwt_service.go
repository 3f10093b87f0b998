// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"taponn/config"
	"taponn/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	method    *jwt.SigningMethodHMAC
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Only HMAC algorithms are accepted since tokens are signed with a shared secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := jwt.GetSigningMethod(cfg.Auth.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q", cfg.Auth.Algorithm)
	}

	return &jwtService{
		secret:    []byte(cfg.Auth.Secret),
		method:    method,
		accessTTL: cfg.Auth.AccessTokenTTL,
		now:       time.Now,
	}, nil
}

// IssueToken signs a token for the subject using the configured lifetime.
func (s *jwtService) IssueToken(userID uuid.UUID) (string, error) {
	return s.IssueTokenWithTTL(userID, s.accessTTL)
}

// IssueTokenWithTTL signs a token carrying the subject and an expiry ttl from now.
func (s *jwtService) IssueTokenWithTTL(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a token. Every failure collapses into service.ErrInvalidToken.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, service.ErrInvalidToken
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, errorString(err))
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "subject is not a valid id")
	}

	out := &service.Claims{
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}

	return out, nil
}

func errorString(err error) string {
	if err == nil {
		return "token is not valid"
	}

	return err.Error()
}
