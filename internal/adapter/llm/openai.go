// Package llm adapts hosted text-generation APIs to the advisor's
// TextGenerator port.
package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a concise personal finance assistant. " +
	"Answer with short, actionable bullet points and no preamble."

// Config holds the text-generation client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client implements usecase.TextGenerator on top of an OpenAI-compatible
// chat completion API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a new Client. BaseURL is optional and allows pointing
// at any OpenAI-compatible endpoint.
func NewClient(cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Client{
		api:   openai.NewClientWithConfig(apiCfg),
		model: model,
	}
}

// Generate sends the prompt and returns the raw completion text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   256,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
