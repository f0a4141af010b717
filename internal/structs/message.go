package structs

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one logged chat turn, either side.
type Message struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}
