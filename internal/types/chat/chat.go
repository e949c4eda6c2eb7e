package chat

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// FallbackReply is shown when the recommendation backend cannot answer.
const FallbackReply = "Oops! Something went wrong."

type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

type Session struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

type AskRequest struct {
	Message string `json:"message"`
}

type AskResponse struct {
	Reply string `json:"reply"`
}

type SaveSessionRequest struct {
	Messages []Message `json:"messages"`
}
