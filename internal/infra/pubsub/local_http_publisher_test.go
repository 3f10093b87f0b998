package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taponn/config"
	"taponn/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAnalyticsEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.AnalyticsEventMessage{
		RequestID:     "req-1",
		EventID:       "evt-1",
		EventType:     "qr_scan",
		EventCategory: "engagement",
		EventAction:   "scan",
		OccurredAt:    time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishAnalyticsEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "qr_scan", received.Message.Attributes["event_type"])

	payload, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.AnalyticsEventMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "scan", decoded.EventAction)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishAnalyticsEvent(context.Background(), &service.AnalyticsEventMessage{EventID: "evt-2"})

	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name: "not configured",
			cfg:  nil,
			check: func(t *testing.T, p service.EventPublisher) {
				_, ok := p.(*noopPublisher)
				assert.True(t, ok)
			},
		},
		{
			name: "local",
			cfg:  &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"},
			check: func(t *testing.T, p service.EventPublisher) {
				_, ok := p.(*localHTTPPublisher)
				assert.True(t, ok)
			},
		},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			tt.check(t, publisher)
		})
	}
}
