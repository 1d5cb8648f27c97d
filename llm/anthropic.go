package llm

import (
	"context"
	"errors"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
)

// Short names accepted on the command line for Anthropic models.
var anthropicAliases = map[string]string{
	"opus":   "claude-3-opus-20240229",
	"sonnet": "claude-3-5-sonnet-20240620",
	"haiku":  "claude-3-haiku-20240307",
}

const anthropicDefaultMaxTokens = 4000

// Anthropic talks to the Messages API. The client reads ANTHROPIC_API_KEY
// from the environment.
type Anthropic struct {
	client anthropic.Client
	model  string
}

func NewAnthropic(model string) *Anthropic {
	if full, ok := anthropicAliases[model]; ok {
		model = full
	}
	return &Anthropic{client: anthropic.NewClient(), model: model}
}

func (p *Anthropic) Chat(ctx context.Context, req ChatRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxTokens),
		Messages:    buildAnthropicMessages(req.Messages),
		Temperature: anthropic.Float(req.Temperature),
	}
	if s := strings.TrimSpace(req.System); s != "" {
		params.System = []anthropic.TextBlockParam{{Text: s}}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("anthropic: empty response")
	}
	return sb.String(), nil
}

func buildAnthropicMessages(ms []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(ms))
	for _, m := range ms {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}
