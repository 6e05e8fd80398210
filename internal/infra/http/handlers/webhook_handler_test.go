package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehrsalabs/leadbot/internal/infra/database"
	"github.com/mehrsalabs/leadbot/internal/infra/http/handlers"
	"github.com/mehrsalabs/leadbot/internal/infra/integration/telegram"
	"github.com/mehrsalabs/leadbot/internal/usecase"
)

type stubSender struct {
	calls []telegram.SendMessageInput
	err   error
}

func (s *stubSender) SendMessage(input telegram.SendMessageInput) error {
	s.calls = append(s.calls, input)
	return s.err
}

func newWebhookHandler(sender *stubSender) *handlers.WebhookHandler {
	repo := database.NewMemoryLeadStateRepository()
	engine := usecase.NewProcessMessageUseCase(repo, nil, usecase.Links{})
	return handlers.NewWebhookHandler(engine, sender)
}

func TestWebhookProcessesUpdateAndAcks(t *testing.T) {
	sender := &stubSender{}
	h := newWebhookHandler(sender)

	update := []byte(`{"message":{"text":"/start","chat":{"id":42}}}`)
	req := httptest.NewRequest("POST", "/webhook", bytes.NewReader(update))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	assert.Len(t, sender.calls, 1)
	assert.Equal(t, "42", sender.calls[0].ChatID)
	assert.Len(t, sender.calls[0].Options, 4)
}

func TestWebhookAcksWhenSendFails(t *testing.T) {
	sender := &stubSender{err: errors.New("telegram down")}
	h := newWebhookHandler(sender)

	update := []byte(`{"message":{"text":"/start","chat":{"id":42}}}`)
	req := httptest.NewRequest("POST", "/webhook", bytes.NewReader(update))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	// Delivery failure is swallowed: the webhook must not make Telegram retry.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestWebhookIgnoresUpdatesWithoutChat(t *testing.T) {
	sender := &stubSender{}
	h := newWebhookHandler(sender)

	req := httptest.NewRequest("POST", "/webhook", bytes.NewReader([]byte(`{"edited_message":{}}`)))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sender.calls)
}

func TestWebhookRejectsMalformedJSON(t *testing.T) {
	sender := &stubSender{}
	h := newWebhookHandler(sender)

	req := httptest.NewRequest("POST", "/webhook", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
