package llm

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

const (
	tempStep    = 0.1
	tempCeiling = 1.0
)

// Agent couples a provider with one player's conversation state. History
// accumulates successful exchanges only; a failed attempt is dropped before
// the retry so it never pollutes later context.
type Agent struct {
	Name  string
	Model string

	provider  Provider
	system    string
	history   []Message
	baseTemp  float64
	temp      float64
	maxTokens int
	log       *logrus.Logger
}

// NewAgent builds an agent with sampling starting at baseTemp. log receives
// the full prompt/response transcript; pass a logger with a discard output to
// silence it.
func NewAgent(name, model string, p Provider, system string, baseTemp float64, maxTokens int, log *logrus.Logger) *Agent {
	if log == nil {
		log = logrus.New()
	}
	return &Agent{
		Name:      name,
		Model:     model,
		provider:  p,
		system:    system,
		baseTemp:  baseTemp,
		temp:      baseTemp,
		maxTokens: maxTokens,
		log:       log,
	}
}

// maxAttempts is how many escalation steps fit between base and the ceiling,
// inclusive of the attempt at the ceiling itself.
func maxAttempts(base float64) int {
	return int((tempCeiling-base)/tempStep) + 1
}

// Ask sends prompt and retries with escalating temperature until valid
// accepts the response. On success the temperature resets to its base and the
// exchange is kept in history. Exhausting the retry budget is fatal for the
// caller's turn; the returned error should abort the match.
func (a *Agent) Ask(ctx context.Context, prompt string, valid func(string) bool) (string, error) {
	attempts := maxAttempts(a.baseTemp)
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			a.log.Infof("querying model (attempt %d, temperature %.1f)", attempt+1, a.temp)
		}
		a.log.Infof("user message: %s", prompt)

		a.history = append(a.history, Message{Role: RoleUser, Content: prompt})
		resp, err := a.provider.Chat(ctx, ChatRequest{
			System:      a.system,
			Messages:    a.history,
			Temperature: a.temp,
			MaxTokens:   a.maxTokens,
		})
		if err != nil {
			// Transport failures consume an attempt like invalid text does,
			// except cancellation, which ends the match anyway.
			a.history = a.history[:len(a.history)-1]
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			lastErr = err
			a.escalate()
			a.log.Warnf("model call failed: %v (temperature now %.1f)", err, a.temp)
			continue
		}
		a.log.Infof("model response: %s", resp)

		if valid(resp) {
			a.history = append(a.history, Message{Role: RoleAssistant, Content: resp})
			a.temp = a.baseTemp
			return resp, nil
		}

		a.history = a.history[:len(a.history)-1]
		a.escalate()
		a.log.Warnf("invalid response, increasing temperature to %.1f", a.temp)
	}

	if lastErr != nil {
		return "", fmt.Errorf("%s: no valid response after %d attempts: %w", a.Name, attempts, lastErr)
	}
	return "", fmt.Errorf("%s: no valid response after %d attempts, even at maximum temperature", a.Name, attempts)
}

func (a *Agent) escalate() {
	a.temp = math.Min(a.temp+tempStep, tempCeiling)
}

// ExplainRules asks the model to restate the game rules from its system
// prompt. One shot, no validation, no effect on match history.
func (a *Agent) ExplainRules(ctx context.Context) (string, error) {
	return a.provider.Chat(ctx, ChatRequest{
		System:      a.system,
		Messages:    []Message{{Role: RoleUser, Content: "Please explain the rules of the game we're about to play."}},
		Temperature: a.baseTemp,
		MaxTokens:   a.maxTokens,
	})
}

// History returns a copy of the accumulated conversation.
func (a *Agent) History() []Message {
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}

// Temperature returns the current sampling temperature.
func (a *Agent) Temperature() float64 { return a.temp }
