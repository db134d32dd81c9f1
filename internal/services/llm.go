package services

import (
	"context"
	"fmt"
	"strings"

	"alfredoptarigan/ai-interviewer/internal/config"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// ChatClient is the one LLM operation this service needs: a system
// prompt plus a user prompt in, generated text out.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewChatClient picks the provider from config.
func NewChatClient(cfg config.LLMConfig) (ChatClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenRouter:
		return NewOpenRouterClient(cfg), nil
	case ProviderGemini:
		return NewGeminiClient(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
