package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		baseURL: "https://api.telegram.org",
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage delivers one reply over the Bot API. Replies carry HTML markup
// and, when options are present, a resized reply keyboard.
func (c *Client) SendMessage(input SendMessageInput) error {
	if c.token == "" {
		return fmt.Errorf("telegram bot token not configured")
	}

	payload := sendMessageRequest{
		ChatID:    input.ChatID,
		Text:      input.Text,
		ParseMode: "HTML",
	}
	if len(input.Options) > 0 {
		keyboard := make([][]keyboardButton, 0, len(input.Options))
		for _, option := range input.Options {
			keyboard = append(keyboard, []keyboardButton{{Text: option}})
		}
		payload.ReplyMarkup = &replyKeyboardMarkup{
			Keyboard:       keyboard,
			ResizeKeyboard: true,
		}
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sendMessage: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result sendMessageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("telegram response (status %d): %w", resp.StatusCode, err)
	}
	if !result.OK {
		return fmt.Errorf("telegram api error %d: %s", result.ErrorCode, result.Description)
	}

	return nil
}
