package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mehrsalabs/leadbot/internal/infra/http/middleware"
	"github.com/mehrsalabs/leadbot/internal/usecase"
)

type WebChatHandler struct {
	Engine      *usecase.ProcessMessageUseCase
	rateLimiter *RateLimiter
}

func NewWebChatHandler(engine *usecase.ProcessMessageUseCase) *WebChatHandler {
	return &WebChatHandler{
		Engine:      engine,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min per IP
	}
}

type WebChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type WebChatMessage struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type WebChatResponse struct {
	Messages []WebChatMessage `json:"messages"`
}

type NewSessionResponse struct {
	SessionID string `json:"session_id"`
}

// HandleMessage runs one dialog turn for a web visitor. The responder
// collects replies into the response body instead of pushing them anywhere.
func (h *WebChatHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
		return
	}

	var req WebChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	middleware.RecordMessage(usecase.ChannelWeb)

	response := WebChatResponse{Messages: []WebChatMessage{}}
	respond := func(text string, options []string) error {
		if options == nil {
			options = []string{}
		}
		response.Messages = append(response.Messages, WebChatMessage{
			Text:    text,
			Options: options,
		})
		return nil
	}

	input := usecase.ProcessMessageInput{
		Identity: req.SessionID,
		Text:     req.Message,
		Channel:  usecase.ChannelWeb,
	}
	if err := h.Engine.Execute(r.Context(), input, respond); err != nil {
		log.Printf("❌ web-chat dialog error for session %s: %v", req.SessionID, err)
		http.Error(w, "Failed to process message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleNewSession issues a fresh session id for a web visitor.
func (h *WebChatHandler) HandleNewSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(NewSessionResponse{SessionID: uuid.New().String()})
}
