package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// DoctypeMarker is the structural validity heuristic for model output: a usable
// response must contain the literal document-type declaration. Matched as a
// case-sensitive substring, no HTML parsing.
const DoctypeMarker = "<!doctype html"

// HTMLModel is the generative text collaborator: an untrusted, fallible black box.
type HTMLModel interface {
	GenerateHTML(ctx context.Context, system, user string) (string, error)
}

// OpenAIModel generates landing pages through the chat-completions API.
type OpenAIModel struct {
	client      openai.Client
	model       string
	temperature float64
	timeout     time.Duration
	logger      *zap.Logger
}

func NewOpenAIModel(apiKey, model string, temperature float64, timeout time.Duration, logger *zap.Logger) *OpenAIModel {
	return &OpenAIModel{
		client:      openai.NewClient(option.WithAPIKey(apiKey)),
		model:       model,
		temperature: temperature,
		timeout:     timeout,
		logger:      logger,
	}
}

func (m *OpenAIModel) GenerateHTML(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(m.model),
		Temperature: openai.Float(m.temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenAI response")
	}

	text := resp.Choices[0].Message.Content
	m.logger.Info("OpenAI response received",
		zap.String("model", m.model),
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return text, nil
}

// extractHTML strips an optional fenced code-block wrapper and verifies the
// doctype marker. The returned document is otherwise used verbatim.
func extractHTML(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```html") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```html"))
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```"))
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "```"))
	}

	if cleaned == "" {
		return "", fmt.Errorf("model returned empty content")
	}
	if !strings.Contains(cleaned, DoctypeMarker) {
		return "", fmt.Errorf("model output missing %q marker", DoctypeMarker)
	}
	return cleaned, nil
}
