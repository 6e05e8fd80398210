package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/mehrsalabs/leadbot/internal/infra/http/middleware"
	"github.com/mehrsalabs/leadbot/internal/infra/integration/telegram"
	"github.com/mehrsalabs/leadbot/internal/usecase"
)

// TelegramSender is the outbound half of the webhook.
type TelegramSender interface {
	SendMessage(input telegram.SendMessageInput) error
}

type WebhookHandler struct {
	Engine *usecase.ProcessMessageUseCase
	Sender TelegramSender
}

func NewWebhookHandler(engine *usecase.ProcessMessageUseCase, sender TelegramSender) *WebhookHandler {
	return &WebhookHandler{
		Engine: engine,
		Sender: sender,
	}
}

type telegramUpdate struct {
	Message struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

// Handle processes one Telegram update. The webhook always acknowledges with
// 200 once the envelope parses: Telegram retries non-200 responses, and a
// failed outbound send must not replay the dialog turn.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var update telegramUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Bad JSON", http.StatusBadRequest)
		return
	}

	if update.Message.Chat.ID == 0 {
		ack(w)
		return
	}

	chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
	middleware.RecordMessage(usecase.ChannelTelegram)

	respond := func(text string, options []string) error {
		// Fire-and-forget: state is saved before this runs, so a delivery
		// failure only loses one rendered reply, never dialog progress.
		err := h.Sender.SendMessage(telegram.SendMessageInput{
			ChatID:  chatID,
			Text:    text,
			Options: options,
		})
		if err != nil {
			log.Printf("⚠️ telegram send failed for chat %s: %v", chatID, err)
			middleware.RecordIntegrationError("telegram")
		}
		return nil
	}

	input := usecase.ProcessMessageInput{
		Identity: chatID,
		Text:     update.Message.Text,
		Channel:  usecase.ChannelTelegram,
	}
	if err := h.Engine.Execute(r.Context(), input, respond); err != nil {
		log.Printf("❌ webhook dialog error for chat %s: %v", chatID, err)
	}

	ack(w)
}

func ack(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
