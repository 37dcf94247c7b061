package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler() *PushHandler {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func pushRequest(t *testing.T, event *entity.DomainEvent, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestHandlePush_DispatchesByType(t *testing.T) {
	h := newTestPushHandler()

	var got *entity.DomainEvent
	var requestID string
	h.Register(entity.EventProfileSubmitted, func(ctx context.Context, event *entity.DomainEvent) error {
		got = event
		requestID = deliverycontext.GetRequestIDFromContext(ctx)

		return nil
	})

	event := &entity.DomainEvent{
		Type:     entity.EventProfileSubmitted,
		Identity: "uid-1",
		Role:     entity.RoleStudent,
		Fields:   []string{"phone"},
	}
	rec := servePush(h, pushRequest(t, event, map[string]string{"request_id": "req-9"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, entity.Identity("uid-1"), got.Identity)
	assert.Equal(t, "req-9", requestID)
}

func TestHandlePush_RetryableFailure(t *testing.T) {
	h := newTestPushHandler()
	h.Register(entity.EventAccountRegistered, func(context.Context, *entity.DomainEvent) error {
		return NewRetryableError(errors.New("store unavailable"))
	})

	event := &entity.DomainEvent{Type: entity.EventAccountRegistered, Identity: "uid-1", Role: entity.RoleTeacher}
	rec := servePush(h, pushRequest(t, event, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PermanentFailureIsAcked(t *testing.T) {
	h := newTestPushHandler()

	// Built-in audit handler rejects an event without identity
	event := &entity.DomainEvent{Type: entity.EventAccountRegistered, Role: entity.RoleTeacher}
	rec := servePush(h, pushRequest(t, event, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UnknownTypeIsAcked(t *testing.T) {
	h := newTestPushHandler()

	rec := servePush(h, pushRequest(t, &entity.DomainEvent{Type: "something.else"}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_BadPayload(t *testing.T) {
	h := newTestPushHandler()

	var msg PubSubMessage
	msg.Message.Data = "!!not-base64"
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := servePush(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
