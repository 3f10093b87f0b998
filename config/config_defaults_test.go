package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsAuthAndCORS(t *testing.T) {
	cfg := &Config{}
	cfg.App.FrontendURL = "https://app.taponn.test/"

	applyDefaults(cfg)

	assert.Equal(t, "6MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "https://app.taponn.test", cfg.App.FrontendURL)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 43200*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Contains(t, cfg.HTTP.CORS.AllowOrigins, "http://localhost:5173")
	assert.Contains(t, cfg.HTTP.CORS.AllowOrigins, "https://app.taponn.test")
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{Algorithm: "HS512", AccessTokenTTL: time.Hour},
	}
	cfg.HTTP.CORS.AllowOrigins = []string{"http://localhost:3000"}

	applyDefaults(cfg)

	assert.Equal(t, "HS512", cfg.Auth.Algorithm)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	// the default frontend URL is already listed, so nothing is appended
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORS.AllowOrigins)
}
