package llm

import (
	"context"
	"strings"
)

// Message is one prior exchange in an agent's conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatRequest is one blocking completion call.
type ChatRequest struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Provider sends a single chat request to an upstream model and returns the
// assistant text. Providers are stateless; conversation history lives in the
// Agent.
type Provider interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// ProviderFor routes a model name to its backend: the Anthropic aliases go to
// the Messages API, gpt-* to OpenAI, everything else to a local Ollama server.
func ProviderFor(model string) (Provider, error) {
	switch {
	case isAnthropicModel(model):
		return NewAnthropic(model), nil
	case isOpenAIModel(model):
		return NewOpenAI(model), nil
	default:
		return NewOllama(model)
	}
}

func isAnthropicModel(model string) bool {
	switch model {
	case "opus", "sonnet", "haiku":
		return true
	}
	return strings.HasPrefix(model, "claude-")
}

func isOpenAIModel(model string) bool {
	switch model {
	case "gpt-4o", "gpt-4o-mini", "gpt-4", "gpt-3.5":
		return true
	}
	return strings.HasPrefix(model, "gpt-")
}
