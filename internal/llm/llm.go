package llm

import "context"

// Message represents a conversation message.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Client defines the interface for chat-completion providers.
type Client interface {
	// Complete sends the messages to the provider and returns the
	// generated reply text.
	Complete(ctx context.Context, messages []Message) (string, error)
}
