package background

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ImageGenerator produces a single background image for a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// GeminiImageGenerator generates background images with a Gemini image model.
type GeminiImageGenerator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiImageGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiImageGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiImageGenerator{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *GeminiImageGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini image generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no candidates in Gemini image response")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			g.logger.Debug("Gemini image received",
				zap.String("model", g.model),
				zap.String("mime_type", part.InlineData.MIMEType),
				zap.Int("bytes", len(part.InlineData.Data)),
			)
			return part.InlineData.Data, nil
		}
	}

	return nil, fmt.Errorf("empty image payload from Gemini")
}
