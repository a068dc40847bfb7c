package msg

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser        Sender = "user"
	SenderCounterpart Sender = "counterpart"
)

// Kind describes the message payload type. Only text messages are produced
// by this core; image and voice exist for messages ingested from elsewhere.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindVoice Kind = "voice"
)

// Message is a single entry in a conversation.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Pending   bool      `json:"pending"`
	Failed    bool      `json:"failed"`
	Edited    bool      `json:"edited"`
}

// New builds a text message with a fresh id.
func New(sender Sender, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Kind:      KindText,
		CreatedAt: time.Now(),
	}
}
