// Package llm wraps an OpenAI-compatible chat endpoint for the SQL
// assistant. The usecase layer depends on the Completer interface so tests
// can stub the model out entirely.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/gridironhq/leaguesync/internal/platform/logging"
)

// Completer produces one chat completion for a system prompt and user prompt.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Config struct {
	APIKey  string
	BaseURL string // optional, for OpenAI-compatible local endpoints
	Model   string
	Timeout time.Duration
}

type Client struct {
	client *openai.Client
	model  string
	logger *logging.Logger
}

func NewClient(cfg Config, logger *logging.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	if cfg.Timeout > 0 {
		if httpClient, ok := clientConfig.HTTPClient.(*http.Client); ok {
			httpClient.Timeout = cfg.Timeout
		}
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0,
	})
	if err != nil {
		c.logger.WarnContext(ctx, "chat completion failed", "model", c.model, "elapsed", time.Since(start), "error", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	c.logger.DebugContext(ctx, "chat completion finished",
		"model", c.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"elapsed", time.Since(start),
	)
	return resp.Choices[0].Message.Content, nil
}
