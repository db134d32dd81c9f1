package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient is the alternative ChatClient provider for
// deployments without an OpenAI-compatible endpoint.
func NewGeminiClient(apiKey, modelName string) (ChatClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	return &geminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete implements ChatClient. Gemini has no separate system role
// here, so the system prompt rides along as a system instruction.
func (g *geminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: 4096,
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
