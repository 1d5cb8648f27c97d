package llm

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
)

const openAIDefaultMaxTokens = 4096

// OpenAI talks to the chat completions API. The client reads OPENAI_API_KEY
// (and OPENAI_BASE_URL, for compatible endpoints) from the environment.
type OpenAI struct {
	client openai.Client
	model  string
}

func NewOpenAI(model string) *OpenAI {
	return &OpenAI{client: openai.NewClient(), model: model}
}

func (p *OpenAI) Chat(ctx context.Context, req ChatRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = openAIDefaultMaxTokens
	}
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		if m.Role == RoleAssistant {
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		} else {
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    msgs,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
