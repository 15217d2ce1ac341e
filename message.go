package fundora

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is an entry of the conversation with the assistant.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage returns a message with a fresh random ID.
func NewMessage(text string, isUser bool, at time.Time) Message {
	return Message{ID: uuid.New(), Text: text, IsUser: isUser, Timestamp: at}
}

// LoadMessages reads the conversation from kv, oldest first.
func LoadMessages(ctx context.Context, kv KV) ([]Message, error) {
	data, err := kv.Get(ctx, MessagesKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load messages: %w", err)
	}
	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("cannot decode messages: %w", err)
	}
	return msgs, nil
}

// AppendMessages adds messages at the end of the conversation stored in kv.
func AppendMessages(ctx context.Context, kv KV, msgs ...Message) error {
	all, err := LoadMessages(ctx, kv)
	if err != nil {
		return err
	}
	data, err := json.Marshal(append(all, msgs...))
	if err != nil {
		return err
	}
	if err := kv.Set(ctx, MessagesKey, data); err != nil {
		return fmt.Errorf("cannot save messages: %w", err)
	}
	return nil
}
