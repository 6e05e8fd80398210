package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mehrsalabs/leadbot/internal/infra/database"
	"github.com/mehrsalabs/leadbot/internal/infra/http/handlers"
	"github.com/mehrsalabs/leadbot/internal/usecase"
)

func newWebChatHandler() *handlers.WebChatHandler {
	repo := database.NewMemoryLeadStateRepository()
	engine := usecase.NewProcessMessageUseCase(repo, nil, usecase.Links{
		Booking: "https://calendly.com/mehrsasharoleslam",
	})
	return handlers.NewWebChatHandler(engine)
}

func postMessage(t *testing.T, h *handlers.WebChatHandler, sessionID, message string) handlers.WebChatResponse {
	t.Helper()

	body, _ := json.Marshal(handlers.WebChatRequest{SessionID: sessionID, Message: message})
	req := httptest.NewRequest("POST", "/web-chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleMessage(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.WebChatResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWebChatNewSessionIssuesUUID(t *testing.T) {
	h := newWebChatHandler()

	req := httptest.NewRequest("POST", "/web-chat/session", nil)
	rec := httptest.NewRecorder()
	h.HandleNewSession(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp handlers.NewSessionResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	_, err := uuid.Parse(resp.SessionID)
	assert.NoError(t, err)
}

func TestWebChatRequiresSessionID(t *testing.T) {
	h := newWebChatHandler()

	body, _ := json.Marshal(handlers.WebChatRequest{Message: "hello"})
	req := httptest.NewRequest("POST", "/web-chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleMessage(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebChatRejectsInvalidJSON(t *testing.T) {
	h := newWebChatHandler()

	req := httptest.NewRequest("POST", "/web-chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.HandleMessage(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebChatFullRegistrationFlow(t *testing.T) {
	h := newWebChatHandler()
	session := uuid.New().String()

	resp := postMessage(t, h, session, "/start")
	assert.Len(t, resp.Messages, 1)
	assert.Len(t, resp.Messages[0].Options, 4)

	resp = postMessage(t, h, session, "English (EN)")
	assert.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0].Text, "Full Name")
	assert.Empty(t, resp.Messages[0].Options)

	resp = postMessage(t, h, session, "John Doe")
	assert.Contains(t, resp.Messages[0].Text, "John Doe")

	resp = postMessage(t, h, session, "+971500000000")
	assert.Contains(t, resp.Messages[0].Text, "Registration Complete")
	assert.Len(t, resp.Messages[0].Options, 5)

	resp = postMessage(t, h, session, "Book Consultation (Calendly)")
	assert.Contains(t, resp.Messages[0].Text, "calendly.com")
}

func TestWebChatOptionsNeverNull(t *testing.T) {
	h := newWebChatHandler()
	session := uuid.New().String()

	// Language prompt replies carry no options; the JSON still has an array.
	postMessage(t, h, session, "EN")

	body, _ := json.Marshal(handlers.WebChatRequest{SessionID: session, Message: "John"})
	req := httptest.NewRequest("POST", "/web-chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleMessage(rec, req)

	assert.Contains(t, rec.Body.String(), `"options":[]`)
}
