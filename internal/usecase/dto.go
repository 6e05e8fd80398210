package usecase

// Responder renders one reply over the inbound channel. The engine calls it
// exactly once per processed message. Options are quick-reply labels the
// transport may render as a keyboard, or drop.
type Responder func(text string, options []string) error

// Channels a message can arrive from.
const (
	ChannelTelegram = "telegram"
	ChannelWeb      = "web"
)

type ProcessMessageInput struct {
	Identity string `json:"identity"`
	Text     string `json:"text"`
	Channel  string `json:"channel"`
}

// Links are the external URLs interpolated into menu replies.
type Links struct {
	Booking   string
	Website   string
	Instagram string
	YouTube   string
}
