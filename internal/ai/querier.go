package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// ErrNoChoices is returned when the provider answers without any completion.
var ErrNoChoices = errors.New("no choices returned from model")

// Completion holds the generated text and token usage from an LLM call.
type Completion struct {
	Content      string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Client sends a single user prompt to an LLM.
type Client struct {
	client llms.Model
}

// NewClient wraps an existing llms.Model.
func NewClient(client llms.Model) *Client {
	return &Client{client: client}
}

// NewGroqClient creates a client for Groq's OpenAI-compatible API.
func NewGroqClient(apiKey, baseURL, model string) (*Client, error) {
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return NewClient(client), nil
}

// Complete sends prompt as the only message of a fresh conversation and
// returns the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (Completion, error) {
	msgs := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	resp, err := c.client.GenerateContent(ctx, msgs)
	if err != nil {
		return Completion{}, fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return Completion{}, ErrNoChoices
	}

	choice := resp.Choices[0]
	result := Completion{
		Content: choice.Content,
	}

	// Extract token usage from GenerationInfo
	if genInfo := choice.GenerationInfo; genInfo != nil {
		result.InputTokens = intInfo(genInfo, "PromptTokens")
		result.OutputTokens = intInfo(genInfo, "CompletionTokens")
		result.TotalTokens = intInfo(genInfo, "TotalTokens")
	}

	return result, nil
}

func intInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
