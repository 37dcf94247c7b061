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

	"portal/config"
	"portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *entity.DomainEvent {
	return &entity.DomainEvent{
		Type:       entity.EventProfileSubmitted,
		RequestID:  "req-1",
		Identity:   "uid-1",
		Role:       entity.RoleStudent,
		OccurredAt: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC),
		Fields:     []string{"firstName", "phone"},
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	require.NoError(t, publisher.Publish(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, entity.EventProfileSubmitted, received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event entity.DomainEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, entity.Identity("uid-1"), event.Identity)
	assert.Equal(t, []string{"firstName", "phone"}, event.Fields)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, newTestLogger()).Publish(context.Background(), testEvent())

	assert.Error(t, err)
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	params := PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newTestLogger(),
	}

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), testEvent()))

	params.Config = &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/events"}}
	publisher, err = NewEventPublisher(params)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	params.Config = &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}
	_, err = NewEventPublisher(params)
	assert.Error(t, err)

	params.Config = &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}
	_, err = NewEventPublisher(params)
	assert.Error(t, err)

	lc.RequireStart().RequireStop()
}
