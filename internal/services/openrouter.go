package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"alfredoptarigan/ai-interviewer/internal/config"
)

type openRouterClient struct {
	client *openai.Client
	model  string
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid mutating the original
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

// NewOpenRouterClient builds a ChatClient against any OpenAI-compatible
// chat-completions endpoint. The optional HTTP-Referer and X-Title
// headers are the OpenRouter attribution convention.
func NewOpenRouterClient(cfg config.LLMConfig) ChatClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	if cfg.Referrer != "" || cfg.Title != "" {
		h := http.Header{}
		if cfg.Referrer != "" {
			h.Set("HTTP-Referer", cfg.Referrer)
		}
		if cfg.Title != "" {
			h.Set("X-Title", cfg.Title)
		}
		clientConfig.HTTPClient = &http.Client{
			Transport: headerTransport{rt: http.DefaultTransport, headers: h},
		}
	}

	return &openRouterClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

// Complete implements ChatClient.
func (c *openRouterClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
