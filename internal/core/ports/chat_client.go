package ports

import "context"

// ChatMessage is a single turn in a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient abstracts the external chat-completion provider.
type ChatClient interface {
	// Generate sends the conversation to the provider and returns the content
	// of the first choice.
	Generate(ctx context.Context, messages []ChatMessage) (string, error)
}
