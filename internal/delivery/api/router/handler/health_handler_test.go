package handler

import (
	"net/http"
	"testing"

	"taponn/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Version = "1.2.3"
	cfg.App.DocsPath = "/docs"
	h := NewHealthHandler(cfg)

	e := newTestEcho()
	e.GET("/", h.Root)
	e.GET("/api/health", h.HealthCheck)

	t.Run("health", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/health", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"success","message":"TapOnn API is running","version":"1.2.3"}`,
			string(decodeEnvelope(t, rec).Data))
	})

	t.Run("root", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/", "")

		require.Equal(t, http.StatusOK, rec.Code)
		out := decodeData[map[string]string](t, rec)
		assert.Equal(t, "1.2.3", out["version"])
		assert.Equal(t, "PostgreSQL", out["database"])
		assert.Equal(t, "/docs", out["docs"])
		assert.NotEmpty(t, out["message"])
	})
}
