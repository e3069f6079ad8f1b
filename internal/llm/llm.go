package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged turn of a model transcript. Order is
// significant; the sequence is the model's context window.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// Client produces one completion for a transcript. Implementations must be
// safe for concurrent use.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
