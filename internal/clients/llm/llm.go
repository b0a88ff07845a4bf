package llm

import (
	"context"
	"fmt"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
)

const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.0
)

// Client adapts the Anthropic completion API to the stateless
// single-turn contract the summary composer consumes.
type Client struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

func CreateClient(apiKey, model string) *Client {
	return &Client{
		apiKey:      apiKey,
		model:       model,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
}

// Complete runs one completion. The context is accepted for interface
// parity; llmkit manages its own request lifecycle.
func (c *Client) Complete(_ context.Context, systemPrompt, userText string) (string, error) {
	settings := types.RequestSettings{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	response, err := anthropic.PromptWithSettings(systemPrompt, userText, "", c.apiKey, settings)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content in completion response")
	}

	return response.Content[0].Text, nil
}
