package llm

import (
	"context"
	"strings"

	"github.com/ollama/ollama/api"
)

const ollamaDefaultMaxTokens = 5000

// Ollama talks to a local Ollama server. This is the fallback provider for
// any model name the other backends don't claim. OLLAMA_HOST selects the
// server, defaulting to localhost:11434.
type Ollama struct {
	client *api.Client
	model  string
}

func NewOllama(model string) (*Ollama, error) {
	c, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, err
	}
	return &Ollama{client: c, model: model}, nil
}

func (p *Ollama) Chat(ctx context.Context, req ChatRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = ollamaDefaultMaxTokens
	}
	msgs := make([]api.Message, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, api.Message{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, api.Message{Role: m.Role, Content: m.Content})
	}

	stream := false
	var sb strings.Builder
	err := p.client.Chat(ctx, &api.ChatRequest{
		Model:    p.model,
		Messages: msgs,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": req.Temperature,
			"num_predict": maxTokens,
		},
	}, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
