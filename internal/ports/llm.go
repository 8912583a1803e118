package ports

import "context"

// ChatMessage is one role-tagged turn sent to the completion service.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer sends a conversation to a text-completion service and returns
// the raw response text. The output is untrusted: it is not guaranteed to
// be valid JSON, or JSON at all.
type Completer interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
